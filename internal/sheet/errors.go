// Package sheet talks to the remote spreadsheet that holds all league state.
// This file defines the error types shared by the store client and reused by
// higher layers to distinguish failure scenarios: an unknown worksheet name
// versus the store being unreachable or rejecting our credentials.
package sheet

import (
	"errors"
	"fmt"
)

// ErrTableNotFound is returned when a requested worksheet does not exist in
// the spreadsheet.  Handlers should translate this into an HTTP 502 naming
// the missing table, since it means the sheet schema and the service have
// drifted apart.
var ErrTableNotFound = errors.New("table not found")

// ConnectionError indicates that the remote store was unreachable or refused
// our credentials.  It is fatal for the current request but recoverable on
// retry, so read handlers translate it into a degraded 503 response instead
// of crashing the page.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("spreadsheet unreachable: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }
