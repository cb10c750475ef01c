package loan

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("loan not found")
	// ErrForbidden: the caller is authenticated but is not the party the
	// operation belongs to (wrong lender on approve/reject, wrong borrower
	// on pay).
	ErrForbidden = errors.New("not a party to this loan")
	// ErrValidation wraps input guard failures; the wrapped message carries
	// the reason shown to the caller.
	ErrValidation = errors.New("invalid input")
)

// StateError reports a transition that is illegal from the loan's current
// status. Rejected and paid are terminal; nothing transitions out of them.
type StateError struct {
	Current Status
}

func (e *StateError) Error() string {
	return fmt.Sprintf("operation not allowed; current loan status: %s", e.Current)
}
