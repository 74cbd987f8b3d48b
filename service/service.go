// Package service defines the lifecycle contract for infrastructure
// subsystems (audio backend, terminal) and a runner that brings them
// up in dependency order.
package service

import "fmt"

// Service is the lifecycle interface for long-lived subsystems.
//
// Lifecycle:
//  1. Construction (via factory)
//  2. Init(args...) - configuration
//  3. Start() - acquire backend resources, launch goroutines
//  4. [runtime operation]
//  5. Stop() - release resources; must be idempotent
type Service interface {
	// Name returns the unique identifier for this service.
	Name() string

	// Dependencies returns names of services that must Init first.
	Dependencies() []string

	// Init configures the service from optional args.
	Init(args ...any) error

	// Start begins service operation.
	Start() error

	// Stop halts service operation and releases resources.
	Stop() error
}

// Runner holds registered services in resolved dependency order.
type Runner struct {
	ordered []Service
	started []Service
}

// NewRunner resolves a start order for the given services. It fails on
// unknown dependencies and dependency cycles.
func NewRunner(services ...Service) (*Runner, error) {
	byName := make(map[string]Service, len(services))
	for _, s := range services {
		if _, dup := byName[s.Name()]; dup {
			return nil, fmt.Errorf("duplicate service %q", s.Name())
		}
		byName[s.Name()] = s
	}

	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(services))
	ordered := make([]Service, 0, len(services))

	var visit func(s Service) error
	visit = func(s Service) error {
		switch state[s.Name()] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("service dependency cycle through %q", s.Name())
		}
		state[s.Name()] = visiting
		for _, dep := range s.Dependencies() {
			d, ok := byName[dep]
			if !ok {
				return fmt.Errorf("service %q depends on unknown service %q", s.Name(), dep)
			}
			if err := visit(d); err != nil {
				return err
			}
		}
		state[s.Name()] = done
		ordered = append(ordered, s)
		return nil
	}

	for _, s := range services {
		if err := visit(s); err != nil {
			return nil, err
		}
	}
	return &Runner{ordered: ordered}, nil
}

// Order returns the resolved service names, dependencies first.
func (r *Runner) Order() []string {
	names := make([]string, len(r.ordered))
	for i, s := range r.ordered {
		names[i] = s.Name()
	}
	return names
}

// InitAll initializes every service in dependency order.
func (r *Runner) InitAll() error {
	for _, s := range r.ordered {
		if err := s.Init(); err != nil {
			return fmt.Errorf("init %s: %w", s.Name(), err)
		}
	}
	return nil
}

// StartAll starts every service in dependency order. On failure the
// already started services are stopped in reverse order.
func (r *Runner) StartAll() error {
	for _, s := range r.ordered {
		if err := s.Start(); err != nil {
			r.StopAll()
			return fmt.Errorf("start %s: %w", s.Name(), err)
		}
		r.started = append(r.started, s)
	}
	return nil
}

// StopAll stops started services in reverse start order. Safe to call
// multiple times.
func (r *Runner) StopAll() {
	for i := len(r.started) - 1; i >= 0; i-- {
		_ = r.started[i].Stop()
	}
	r.started = r.started[:0]
}
