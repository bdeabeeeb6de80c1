// Package engine executes the two player-initiated mutations against the
// spreadsheet.  The store offers no cross-table atomicity and no locking, so
// every mutation is modeled as an explicit ordered step list with a recorded
// completion cursor; partial failure is representable and reportable instead
// of being swallowed by a blanket catch.
package engine

import (
	"fmt"
	"strings"
)

// ValidationError rejects bad user input before any remote call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotAvailableError means the requested film cannot be bought: either no
// Draft_Pool row carries that title or its availability flag is already off.
// It is always a zero-write failure.
type NotAvailableError struct {
	Title string
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("film %q is not available for purchase", e.Title)
}

// WriteError wraps a single failed remote write that left no partial state
// behind, such as the first mutating step of a sequence or a lone append.
type WriteError struct {
	Step string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write failed at %s: %v", e.Step, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// PartialTransactionError is the most severe failure class: a multi-step
// write sequence died after some steps had already mutated the store.
// Completed lists the steps that went through, in order, so an operator can
// repair the stranded state by hand.  Callers must not retry blindly; with
// an unconfirmed step a retry risks a double append.
type PartialTransactionError struct {
	Op        string
	Completed []string
	Err       error
}

func (e *PartialTransactionError) Error() string {
	return fmt.Sprintf("%s left the store inconsistent after [%s]: %v",
		e.Op, strings.Join(e.Completed, ", "), e.Err)
}

func (e *PartialTransactionError) Unwrap() error { return e.Err }
