// Package status is a lock-light metric registry for the frame loop.
// Components cache metric pointers during construction; per-frame code
// writes straight to atomics.
package status

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"
)

// Registry is the central metrics facade.
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
	Bools  *MetricMap[atomic.Bool]
}

// NewRegistry creates an initialized Registry.
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
		Bools:  NewMetricMap[atomic.Bool](),
	}
}

// Metric names recorded by the frame bridge.
const (
	MetricFrames              = "app.frames"
	MetricActionsResolved     = "input.actions_resolved"
	MetricInstructionsRun     = "app.instructions_run"
	MetricInstructionsDropped = "app.instructions_dropped"
	MetricBorrowConflicts     = "app.borrow_conflicts"
	MetricEmptyFrames         = "stage.empty_frames"
)

// MetricMap is a concurrency-safe registry for metrics of type T.
// Registration takes the mutex; cached pointer access is lock-free.
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

// NewMetricMap creates an initialized MetricMap.
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric pointer for key, creating it if absent.
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	if ptr, ok := m.items[key]; ok {
		m.mu.RUnlock()
		return ptr
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr := new(T)
	m.items[key] = ptr
	return ptr
}

// Range iterates all metrics in sorted key order.
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fn(k, m.items[k])
	}
}

// Count returns the number of registered metrics.
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// AtomicFloat provides atomic float64 operations via bit conversion.
// The zero value represents 0.0 and is ready to use.
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set stores a value atomically.
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get loads the value atomically.
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add atomically adds delta and returns the new value.
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
