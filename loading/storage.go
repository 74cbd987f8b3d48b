// Package loading implements ticketed resource storage: keyed stores
// that hand out stable opaque tickets before the underlying values
// exist, and a directory that routes ticket requests by storage kind.
package loading

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/stagekit/core"
)

// Loader materializes one resource value from kind-specific arguments,
// e.g. a file path for textures or a (path, point size) pair for fonts.
type Loader[V, A any] interface {
	Load(args A) (V, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc[V, A any] func(args A) (V, error)

func (f LoaderFunc[V, A]) Load(args A) (V, error) { return f(args) }

// slot is one resource position: pending until Load materializes it.
type slot[V any] struct {
	key    string
	loaded bool
	value  V
}

// Storage is a keyed ticket store for one resource kind.
//
// Lifecycle: while unlocked, TakeTicket registers keys and returns
// stable tickets (idempotent per key); Load materializes a slot
// through the injected loader; Lock is a one-way transition after
// which no new key can be registered, guaranteeing that ticket
// lookups never observe reallocation.
type Storage[V, A any] struct {
	mu      sync.RWMutex
	loader  Loader[V, A]
	tickets map[string]core.Ticket
	slots   []slot[V]
	locked  bool
}

// NewStorage creates a store backed by the given loader capability.
func NewStorage[V, A any](loader Loader[V, A]) *Storage[V, A] {
	return &Storage[V, A]{
		loader:  loader,
		tickets: make(map[string]core.Ticket),
	}
}

// TakeTicket reserves a stable ticket for key. Repeated calls with the
// same key return the identical ticket. Registering a new key after
// Lock fails with ErrAlreadyLocked.
func (s *Storage[V, A]) TakeTicket(key string) (core.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.takeTicketLocked(key)
}

func (s *Storage[V, A]) takeTicketLocked(key string) (core.Ticket, error) {
	if t, ok := s.tickets[key]; ok {
		return t, nil
	}
	if s.locked {
		return 0, fmt.Errorf("%w: key %q", ErrAlreadyLocked, key)
	}
	t := core.Ticket(len(s.slots))
	s.tickets[key] = t
	s.slots = append(s.slots, slot[V]{key: key})
	return t, nil
}

// Load materializes the slot for key through the loader, registering
// the key first if no ticket was taken yet. On loader failure the slot
// stays pending and the backend error is returned wrapped in
// ErrLoadFailure.
func (s *Storage[V, A]) Load(key string, args A) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.takeTicketLocked(key)
	if err != nil {
		return err
	}

	v, err := s.loader.Load(args)
	if err != nil {
		return fmt.Errorf("%w: key %q: %v", ErrLoadFailure, key, err)
	}

	s.slots[t].value = v
	s.slots[t].loaded = true
	return nil
}

// Lock freezes key registration. Existing tickets stay valid and are
// never renumbered; GetByTicket after Lock is O(1) with no
// reallocation.
func (s *Storage[V, A]) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locked = true
}

// Locked reports whether registration has been frozen.
func (s *Storage[V, A]) Locked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locked
}

// GetByTicket returns the loaded value behind a ticket. It fails with
// ErrTicketNotFound for tickets this store never issued and
// ErrResourceNotLoaded for slots that are still pending.
func (s *Storage[V, A]) GetByTicket(t core.Ticket) (V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero V
	if t < 0 || int(t) >= len(s.slots) {
		return zero, fmt.Errorf("%w: ticket %d", ErrTicketNotFound, int(t))
	}
	sl := s.slots[t]
	if !sl.loaded {
		return zero, fmt.Errorf("%w: key %q", ErrResourceNotLoaded, sl.key)
	}
	return sl.value, nil
}

// Len returns the number of registered slots.
func (s *Storage[V, A]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}
