package balatro

import "errors"

var (
	ErrNoSelection      = ErrInvalidState("no cards selected")
	ErrNoHandsRemaining = ErrInvalidState("no hands remaining this round")
	ErrNoDiscards       = ErrInvalidState("no discards remaining this round")
	ErrHandNotEmpty     = ErrInvalidState("hand already full")
	ErrRunEnded         = errors.New("run already ended")
)

// InvalidStateError marks precondition violations: playing with nothing
// selected, indexing past the hand, drawing over a full hand. These are
// caller bugs, never silently corrected.
type InvalidStateError string

func (e InvalidStateError) Error() string { return "invalid state: " + string(e) }

func ErrInvalidState(msg string) error { return InvalidStateError(msg) }

// ConfigurationError surfaces malformed catalogue data at load time.
// Nothing of this kind may escape during play.
type ConfigurationError string

func (e ConfigurationError) Error() string { return "configuration: " + string(e) }

func ErrConfiguration(msg string) error { return ConfigurationError(msg) }
