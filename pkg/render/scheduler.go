package render

import (
	"sync"
	"time"
)

// FrameInterval approximates one display refresh at 60Hz.
const FrameInterval = 16 * time.Millisecond

// Scheduler coalesces redraw requests into a single pending slot: requests
// arriving while a fire is pending are absorbed into it, so at most one fire
// callback runs per delay window no matter how many state changes asked for
// it, and a sustained request stream still fires once per window. The fire
// callback reads state at fire time, so it always observes the latest
// camera.
type Scheduler struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	fire    func()
	stopped bool
}

// NewScheduler creates a scheduler that invokes fire on its own timer
// goroutine after delay; zero delay means FrameInterval. fire must be safe to
// call from that goroutine (typically it posts a message into the UI loop).
func NewScheduler(delay time.Duration, fire func()) *Scheduler {
	if delay <= 0 {
		delay = FrameInterval
	}
	return &Scheduler{delay: delay, fire: fire}
}

// Request schedules a fire. A request while one is pending is absorbed into
// it; re-arming the timer here would push the deadline out and starve
// redraws under a continuous input stream.
func (s *Scheduler) Request() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || s.timer != nil {
		return
	}
	s.timer = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		s.timer = nil
		stopped := s.stopped
		s.mu.Unlock()
		if !stopped {
			s.fire()
		}
	})
}

// Stop cancels any pending fire and rejects future requests. Idempotent.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
