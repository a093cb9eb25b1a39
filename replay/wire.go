package replay

import (
	"encoding/json"
	"fmt"
)

// EncodeTape renders a tape as stable JSON suitable for checking in next to
// its spec.
func EncodeTape(tape *Tape) ([]byte, error) {
	if tape == nil {
		return nil, fmt.Errorf("nil tape")
	}
	return json.MarshalIndent(tape, "", "  ")
}

// DecodeTape parses a tape and rejects versions this package does not know.
func DecodeTape(data []byte) (*Tape, error) {
	var tape Tape
	if err := json.Unmarshal(data, &tape); err != nil {
		return nil, err
	}
	if tape.TapeVersion != TapeVersion {
		return nil, fmt.Errorf("unsupported tape version %d", tape.TapeVersion)
	}
	return &tape, nil
}

// DecodeSpec parses a scripted run spec.
func DecodeSpec(data []byte) (*RunSpec, error) {
	var spec RunSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}
