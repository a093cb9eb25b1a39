package replay

import "fmt"

// ReplayError pins a failure to the spec step that caused it. StepIndex -1
// means the run could not even be constructed.
type ReplayError struct {
	StepIndex int    `json:"step_index"`
	Reason    string `json:"reason"`
	Message   string `json:"message"`
}

func (e *ReplayError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("replay error(step=%d reason=%s): %s", e.StepIndex, e.Reason, e.Message)
}
