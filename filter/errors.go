package filter

import (
	"errors"
	"fmt"
)

// ErrNotAList indicates a selector that does not lead to a list of objects
var ErrNotAList = errors.New("selection is not a list of objects")

// Error types for filter operations
type (
	// CompilationError indicates a filter expression could not be compiled
	CompilationError struct {
		Expression string
		Reason     string
		Position   int // -1 if position is unknown
		Err        error
	}

	// SelectionError indicates a selector could not be resolved against a response
	SelectionError struct {
		Path    string
		Segment string
		Err     error
	}
)

func (e *CompilationError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("compilation error at position %d in '%s': %s", e.Position, e.Expression, e.Reason)
	}
	return fmt.Sprintf("compilation error in '%s': %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

func (e *SelectionError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("cannot select '%s': %v", e.Path, e.Err)
	}
	return fmt.Sprintf("cannot select '%s' at '%s': %v", e.Path, e.Segment, e.Err)
}

func (e *SelectionError) Unwrap() error {
	return e.Err
}
