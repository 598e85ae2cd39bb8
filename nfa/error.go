package nfa

import (
	"fmt"
)

// BuildError represents an error during NFA construction via the Builder API
type BuildError struct {
	Message string
	StateID StateID
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("NFA build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("NFA build error: %s", e.Message)
}
