package loading

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/stagekit/core"
)

// TicketSource is the storage behavior the directory routes to. Every
// Storage[V, A] satisfies it regardless of its value type.
type TicketSource interface {
	TakeTicket(key string) (core.Ticket, error)
	Lock()
}

// Directory routes (StorageKind, key) ticket requests to the matching
// typed store. It owns no slots itself; it is a pure router plus the
// lifetime owner of each registered store.
type Directory struct {
	mu     sync.RWMutex
	stores map[core.StorageKind]TicketSource
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{stores: make(map[core.StorageKind]TicketSource)}
}

// Register attaches a typed store under a storage kind, replacing any
// previous store for that kind.
func (d *Directory) Register(kind core.StorageKind, store TicketSource) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stores[kind] = store
}

// Resolve dispatches a ticket request to the store for kind. An
// unregistered kind fails with ErrUnknownStorage; scene authors
// misdeclared a storage kind and the error is not retried.
func (d *Directory) Resolve(kind core.StorageKind, key string) (core.Ticket, error) {
	d.mu.RLock()
	store, ok := d.stores[kind]
	d.mu.RUnlock()

	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownStorage, kind)
	}
	return store.TakeTicket(key)
}

// Lock freezes registration on every attached store. Call before the
// first frame so no ticket lookup can race a late registration.
func (d *Directory) Lock() {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, store := range d.stores {
		store.Lock()
	}
}
