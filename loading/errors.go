package loading

import (
	"errors"

	"github.com/lixenwraith/stagekit"
	"github.com/lixenwraith/stagekit/core"
)

var (
	// ErrAlreadyLocked reports key registration attempted after Lock.
	ErrAlreadyLocked = errors.New("storage already locked")

	// ErrTicketNotFound reports a ticket outside the issued range.
	ErrTicketNotFound = errors.New("ticket not found")

	// ErrResourceNotLoaded reports a slot that was registered but never
	// materialized by Load.
	ErrResourceNotLoaded = errors.New("resource not loaded")

	// ErrUnknownStorage reports a storage kind with no registered store.
	// This is a configuration error, never retried.
	ErrUnknownStorage = errors.New("unknown storage")

	// ErrLoadFailure wraps a backend loader error.
	ErrLoadFailure = errors.New("resource load failure")
)

// LogFailure records a resource error at warning level. Used on the
// per-frame path where a missing resource drops one operation but
// never aborts the frame.
func LogFailure(err error, ticket core.Ticket) {
	stagekit.Logger().Warn("resource lookup failed",
		"ticket", int(ticket),
		"error", err)
}
