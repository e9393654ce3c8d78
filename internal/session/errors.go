package session

import (
	"errors"
	"fmt"

	"github.com/abhisek/snakequiz/internal/scoring"
)

var (
	// ErrInvalidSelection indicates an option index outside the question's options.
	ErrInvalidSelection = scoring.ErrInvalidSelection

	// ErrInvalidState indicates an operation not permitted in the current phase.
	ErrInvalidState = errors.New("invalid state")

	// ErrEmptyCategory indicates a category with no questions.
	ErrEmptyCategory = errors.New("empty category")

	// ErrUnknownCategory indicates a category key not present in the catalog.
	ErrUnknownCategory = errors.New("unknown category")
)

// TransitionError is returned when the state machine rejects an operation.
// It names the violated precondition and unwraps to one of the sentinels.
type TransitionError struct {
	Op     Op
	Phase  Phase
	Reason string
	Err    error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s rejected in %s phase: %s: %v", e.Op, e.Phase, e.Reason, e.Err)
}

func (e *TransitionError) Unwrap() error { return e.Err }

func reject(op Op, phase Phase, err error, reason string, args ...any) error {
	return &TransitionError{
		Op:     op,
		Phase:  phase,
		Reason: fmt.Sprintf(reason, args...),
		Err:    err,
	}
}

// Reason returns the violated precondition of a rejected transition, or the
// error text for any other error.
func Reason(err error) string {
	var te *TransitionError
	if errors.As(err, &te) {
		return te.Reason
	}
	return err.Error()
}
