// Package league derives the standings views from a snapshot.  Everything in
// it is a pure function of its inputs: no I/O, no mutation, deterministic
// given identical rows.
package league

import "errors"

// ErrNoLeader is returned when the Players table is empty.  "No players yet"
// is an explicit, testable state here rather than the out-of-bounds fault the
// first dashboard shipped with.
var ErrNoLeader = errors.New("no players yet")
