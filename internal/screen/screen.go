// Package screen abstracts the display surface's fullscreen capability so
// viewer state machines can be exercised without a real browser.
package screen

import "errors"

// Controller is the narrow capability a viewer needs from its display
// surface. Enter may be rejected or confirmed asynchronously; callers must
// treat OnChange notifications, not their own toggle calls, as the source of
// truth for the current mode. That keeps local state correct when the
// surface leaves fullscreen through an out-of-band mechanism such as a
// system-level escape key.
type Controller interface {
	// Enter requests fullscreen. The request may fail or be ignored.
	Enter() error
	// Exit leaves fullscreen. Exiting while not fullscreen is a no-op.
	Exit() error
	// Active reports whether the surface is currently fullscreen.
	Active() bool
	// OnChange registers a callback fired whenever the fullscreen state
	// changes, regardless of what caused the change.
	OnChange(func(active bool))
}

// Fake is a Controller for tests. RejectEnter simulates a surface that
// refuses fullscreen requests; ForceExit simulates an out-of-band exit.
type Fake struct {
	active      bool
	RejectEnter bool
	callbacks   []func(bool)
}

// NewFake returns a Fake in windowed mode.
func NewFake() *Fake {
	return &Fake{}
}

func (f *Fake) Enter() error {
	if f.RejectEnter {
		return errRejected
	}
	f.set(true)
	return nil
}

func (f *Fake) Exit() error {
	f.set(false)
	return nil
}

func (f *Fake) Active() bool { return f.active }

func (f *Fake) OnChange(cb func(active bool)) {
	f.callbacks = append(f.callbacks, cb)
}

// ForceExit simulates the surface leaving fullscreen without a viewer
// request (system escape key).
func (f *Fake) ForceExit() {
	f.set(false)
}

func (f *Fake) set(active bool) {
	if f.active == active {
		return
	}
	f.active = active
	for _, cb := range f.callbacks {
		cb(active)
	}
}

var errRejected = errors.New("screen: fullscreen request rejected")
