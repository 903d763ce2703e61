package content

import (
	"github.com/leasemint/dataroom/internal/input"
	"github.com/leasemint/dataroom/internal/screen"
)

// Deck is the slide viewer state machine: a clamped current index over an
// ordered slide sequence, plus a fullscreen flag mirrored from the display
// surface. Keyboard events and on-screen controls drive the same transition
// functions, so behavior is identical regardless of input source.
type Deck struct {
	slides     []Slide
	index      int
	fullscreen bool
	screen     screen.Controller
	unsubKeys  func()
}

// NewDeck creates a viewer over the given slides. The fullscreen flag
// follows the surface's own change notifications, so an out-of-band exit
// (system escape) is reflected without a toggle call.
func NewDeck(slides []Slide, sc screen.Controller) *Deck {
	d := &Deck{slides: slides, screen: sc}
	if sc != nil {
		sc.OnChange(func(active bool) {
			d.fullscreen = active
		})
	}
	return d
}

// Mount registers the keyboard listeners. They are dropped again by Unmount
// so input meant for another view is never handled here.
func (d *Deck) Mount(keys input.KeySource) {
	if keys == nil {
		return
	}
	d.unsubKeys = keys.Subscribe(d.HandleKey)
}

// Unmount deregisters the keyboard listeners.
func (d *Deck) Unmount() {
	if d.unsubKeys != nil {
		d.unsubKeys()
		d.unsubKeys = nil
	}
}

// Empty reports whether there is nothing to show. The caller renders the
// explicit "no content available" branch instead of a viewer.
func (d *Deck) Empty() bool { return len(d.slides) == 0 }

// Len returns the number of slides.
func (d *Deck) Len() int { return len(d.slides) }

// Index returns the current slide index.
func (d *Deck) Index() int { return d.index }

// Current returns the slide under the index. ok is false for an empty deck.
func (d *Deck) Current() (Slide, bool) {
	if d.Empty() {
		return Slide{}, false
	}
	return d.slides[d.index], true
}

// Next advances by one slide; at the last slide it is a no-op.
func (d *Deck) Next() { d.JumpTo(d.index + 1) }

// Prev steps back by one slide; at the first slide it is a no-op.
func (d *Deck) Prev() { d.JumpTo(d.index - 1) }

// JumpTo sets the index directly, clamped to [0, len-1]. On an empty deck
// the index stays 0.
func (d *Deck) JumpTo(i int) {
	if d.Empty() {
		d.index = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i > len(d.slides)-1 {
		i = len(d.slides) - 1
	}
	d.index = i
}

// HandleKey routes a key event into the same transitions the on-screen
// controls use. Space advances, arrows navigate, escape leaves fullscreen.
func (d *Deck) HandleKey(key string) {
	switch key {
	case input.KeyArrowRight, input.KeySpace:
		d.Next()
	case input.KeyArrowLeft:
		d.Prev()
	case input.KeyEscape:
		if d.screen != nil {
			_ = d.screen.Exit()
		}
	}
}

// Fullscreen reports the view mode as last confirmed by the surface.
func (d *Deck) Fullscreen() bool { return d.fullscreen }

// ToggleFullscreen asks the surface to enter or leave fullscreen. The local
// flag is not set here: it follows the surface's change notification, which
// tolerates rejected or asynchronously confirmed requests.
func (d *Deck) ToggleFullscreen() {
	if d.screen == nil {
		return
	}
	if d.screen.Active() {
		_ = d.screen.Exit()
		return
	}
	_ = d.screen.Enter()
}
