package content

import "github.com/leasemint/dataroom/internal/screen"

// Embedded is the viewer state for an externally hosted presentation shown
// in an inline frame: a loading flag held until the embed reports ready,
// and a fullscreen toggle against the wrapping container.
type Embedded struct {
	url        string
	loading    bool
	fullscreen bool
	screen     screen.Controller
}

// NewEmbedded creates the viewer for the given document reference. Loading
// starts true and stays true until MarkLoaded.
func NewEmbedded(url string, sc screen.Controller) *Embedded {
	e := &Embedded{url: url, loading: true, screen: sc}
	if sc != nil {
		sc.OnChange(func(active bool) {
			e.fullscreen = active
		})
	}
	return e
}

// URL returns the embedded document reference. The same reference backs the
// open-externally escape hatch for contexts where embedding is blocked.
func (e *Embedded) URL() string { return e.url }

// Loading reports whether the embed is still loading.
func (e *Embedded) Loading() bool { return e.loading }

// MarkLoaded records that the embedded surface finished loading.
func (e *Embedded) MarkLoaded() { e.loading = false }

// Fullscreen reports the view mode as last confirmed by the surface.
func (e *Embedded) Fullscreen() bool { return e.fullscreen }

// ToggleFullscreen behaves as the deck's toggle, but the surface wraps the
// embed container rather than the whole viewport.
func (e *Embedded) ToggleFullscreen() {
	if e.screen == nil {
		return
	}
	if e.screen.Active() {
		_ = e.screen.Exit()
		return
	}
	_ = e.screen.Enter()
}
