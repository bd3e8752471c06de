package whisper

import "github.com/manav03panchal/murmur/internal/timer"

// scheduleOverlaysLocked arms the hide timers for a new display, replacing
// those of the previous one so a late hide never blanks a newer whisper.
func (s *Scheduler) scheduleOverlaysLocked() {
	s.cancelOverlaysLocked()
	gen := s.overlayGen

	s.glitchHide = s.clock.AfterFunc(s.cfg.GlitchDuration, func() {
		if s.overlayCurrent(gen) {
			s.presenter.HideGlitch()
		}
	})
	s.whisperHide = s.clock.AfterFunc(s.cfg.DisplayDuration, func() {
		if s.overlayCurrent(gen) {
			s.presenter.HideWhisper()
		}
	})
}

func (s *Scheduler) cancelOverlaysLocked() {
	s.overlayGen++
	stopHandle(&s.glitchHide)
	stopHandle(&s.whisperHide)
}

func (s *Scheduler) overlayCurrent(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen == s.overlayGen
}

func stopHandle(h *timer.Handle) {
	if *h != nil {
		(*h).Stop()
		*h = nil
	}
}
