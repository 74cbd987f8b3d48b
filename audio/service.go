package audio

import (
	"sync/atomic"

	"github.com/lixenwraith/stagekit"
)

// Service wraps Player with the service lifecycle. A machine without
// an audio backend disables the service instead of failing startup;
// the frame loop keeps running silently.
type Service struct {
	player   *Player
	disabled atomic.Bool
}

// NewService creates a new audio service.
func NewService() *Service {
	return &Service{}
}

// Name implements service.Service.
func (s *Service) Name() string {
	return "audio"
}

// Dependencies implements service.Service.
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service.
func (s *Service) Init(args ...any) error {
	s.player = NewPlayer()
	return nil
}

// Start implements service.Service. Speaker failure sets the disabled
// flag and returns nil; audio is optional.
func (s *Service) Start() error {
	if s.player == nil {
		s.disabled.Store(true)
		return nil
	}
	if err := s.player.Initialize(); err != nil {
		stagekit.Logger().Warn("audio backend unavailable, running silent", "error", err)
		s.disabled.Store(true)
		s.player = nil
		return nil
	}
	return nil
}

// Stop implements service.Service. Idempotent.
func (s *Service) Stop() error {
	if s.player != nil {
		s.player.Close()
	}
	return nil
}

// IsDisabled returns true if no audio backend is available.
func (s *Service) IsDisabled() bool {
	return s.disabled.Load()
}

// Player returns the underlying player, or nil when disabled.
func (s *Service) Player() *Player {
	if s.disabled.Load() {
		return nil
	}
	return s.player
}
