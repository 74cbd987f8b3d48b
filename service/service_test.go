package service

import (
	"fmt"
	"testing"
)

// recordingService appends lifecycle events to a shared trace.
type recordingService struct {
	name     string
	deps     []string
	trace    *[]string
	startErr error
}

func (s *recordingService) Name() string           { return s.name }
func (s *recordingService) Dependencies() []string { return s.deps }

func (s *recordingService) Init(...any) error {
	*s.trace = append(*s.trace, "init:"+s.name)
	return nil
}

func (s *recordingService) Start() error {
	if s.startErr != nil {
		return s.startErr
	}
	*s.trace = append(*s.trace, "start:"+s.name)
	return nil
}

func (s *recordingService) Stop() error {
	*s.trace = append(*s.trace, "stop:"+s.name)
	return nil
}

func TestRunnerOrdersByDependency(t *testing.T) {
	var trace []string
	audio := &recordingService{name: "audio", deps: []string{"terminal"}, trace: &trace}
	term := &recordingService{name: "terminal", trace: &trace}

	r, err := NewRunner(audio, term)
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}

	order := r.Order()
	if order[0] != "terminal" || order[1] != "audio" {
		t.Errorf("Expected terminal before audio, got %v", order)
	}
}

func TestRunnerRejectsUnknownDependency(t *testing.T) {
	var trace []string
	s := &recordingService{name: "audio", deps: []string{"missing"}, trace: &trace}

	if _, err := NewRunner(s); err == nil {
		t.Errorf("Expected error for unknown dependency")
	}
}

func TestRunnerRejectsCycle(t *testing.T) {
	var trace []string
	a := &recordingService{name: "a", deps: []string{"b"}, trace: &trace}
	b := &recordingService{name: "b", deps: []string{"a"}, trace: &trace}

	if _, err := NewRunner(a, b); err == nil {
		t.Errorf("Expected error for dependency cycle")
	}
}

func TestStartFailureStopsStartedServices(t *testing.T) {
	var trace []string
	term := &recordingService{name: "terminal", trace: &trace}
	audio := &recordingService{
		name:     "audio",
		deps:     []string{"terminal"},
		trace:    &trace,
		startErr: fmt.Errorf("no output device"),
	}

	r, err := NewRunner(term, audio)
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}
	if err := r.StartAll(); err == nil {
		t.Fatalf("Expected StartAll to fail")
	}

	want := []string{"start:terminal", "stop:terminal"}
	if len(trace) != len(want) {
		t.Fatalf("Trace %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("Trace %v, want %v", trace, want)
			break
		}
	}
}
