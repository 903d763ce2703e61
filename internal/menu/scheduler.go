package menu

import "time"

// Scheduler issues cancellable delayed callbacks. The menu owns every
// callback it schedules and cancels them on unmount and on open, so a stale
// timer can never revive the attention label.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

// TimerScheduler is the production Scheduler backed by time.AfterFunc.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// FakeScheduler is a deterministic Scheduler for tests, driven by Advance.
type FakeScheduler struct {
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	at      time.Duration
	fn      func()
	stopped bool
}

// NewFakeScheduler returns a scheduler at time zero.
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{}
}

func (s *FakeScheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := &fakeTimer{at: s.now + d, fn: fn}
	s.timers = append(s.timers, t)
	return func() { t.stopped = true }
}

// Advance moves the clock forward, firing due callbacks in order. Callbacks
// may schedule further callbacks; those fire too if they fall within the
// advanced window.
func (s *FakeScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		idx := -1
		for i, t := range s.timers {
			if t.stopped || t.at > target {
				continue
			}
			if idx < 0 || t.at < s.timers[idx].at {
				idx = i
			}
		}
		if idx < 0 {
			break
		}
		t := s.timers[idx]
		s.now = t.at
		t.stopped = true
		t.fn()
	}
	s.now = target
}

// Pending reports how many callbacks are scheduled and not cancelled.
func (s *FakeScheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}
