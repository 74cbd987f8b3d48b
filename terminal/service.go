package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Service owns the screen lifecycle and the input polling goroutine.
type Service struct {
	screen  tcell.Screen
	backend *Backend
	surface *Surface
	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
}

// NewService creates a new terminal service.
func NewService() *Service {
	return &Service{
		eventCh: make(chan tcell.Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Name implements service.Service.
func (s *Service) Name() string {
	return "terminal"
}

// Dependencies implements service.Service.
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service. It claims the terminal and builds
// the event backend and draw surface over it.
func (s *Service) Init(args ...any) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	screen.EnableMouse()

	s.screen = screen
	s.backend = NewBackend(s.eventCh, func(int, int) { screen.Sync() })
	s.surface = NewSurface(screen)
	return nil
}

// Start implements service.Service. It launches the goroutine pumping
// screen events into the backend channel.
func (s *Service) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	go s.pollLoop()
	return nil
}

// pollLoop forwards screen events until stop. A nil or interrupt event
// means the screen was finalized; the closed channel tells the backend
// to quit.
func (s *Service) pollLoop() {
	defer close(s.doneCh)
	defer close(s.eventCh)

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		if _, interrupted := ev.(*tcell.EventInterrupt); interrupted {
			return
		}

		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop implements service.Service. Idempotent; restores the terminal.
func (s *Service) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)

	// Unblock PollEvent so the pump can exit before Fini.
	if s.screen != nil {
		_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
	<-s.doneCh

	if s.screen != nil {
		s.screen.Fini()
	}
	return nil
}

// Backend returns the frame event source.
func (s *Service) Backend() *Backend {
	return s.backend
}

// Surface returns the frame draw surface.
func (s *Service) Surface() *Surface {
	return s.surface
}
