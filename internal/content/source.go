// Package content resolves and delivers the gated investor material: either
// an ordered deck of local slide images or an embedded external
// presentation. The choice is made per language at configuration time, never
// branched on at runtime by the viewer.
package content

import (
	"path"
	"path/filepath"

	"github.com/leasemint/dataroom/internal/config"
	"github.com/leasemint/dataroom/internal/i18n"
)

// Mode tags a resolved content source.
type Mode string

const (
	ModeDeck     Mode = "deck"
	ModeEmbedded Mode = "embedded"
)

// Source is the tagged variant handed to the viewer: a deck of slides or an
// embedded document reference. Exactly one payload is populated.
type Source struct {
	Mode     Mode    `json:"mode"`
	Slides   []Slide `json:"slides,omitempty"`
	EmbedURL string  `json:"embedUrl,omitempty"`
}

// SlideURLPrefix is the route under which slide images are served.
const SlideURLPrefix = "/slides"

// Resolver resolves a language to its content source using the portal
// configuration. Slide sequences are recomputed on every Resolve call.
type Resolver struct {
	cfg *config.Config
}

// NewResolver creates a Resolver over the given configuration.
func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve returns the content source for the language. An unknown language
// or a slides directory that cannot be read resolves to an empty deck; the
// viewer renders its explicit empty branch, this is not an error.
func (r *Resolver) Resolve(lang i18n.Language) Source {
	lc, ok := r.cfg.Language(lang)
	if !ok {
		return Source{Mode: ModeDeck}
	}

	if lc.Content.Mode == config.ModeEmbedded {
		return Source{Mode: ModeEmbedded, EmbedURL: lc.Content.EmbedURL}
	}

	dir := filepath.Join(r.cfg.AssetRoot, filepath.FromSlash(lc.Content.SlidesDir))
	prefix := path.Join(SlideURLPrefix, string(lang))
	return Source{Mode: ModeDeck, Slides: DiscoverSlides(dir, prefix)}
}

// SlidesDir returns the on-disk slide directory for the language, for the
// static file route. The boolean is false when the language has no slides
// mode configured.
func (r *Resolver) SlidesDir(lang i18n.Language) (string, bool) {
	lc, ok := r.cfg.Language(lang)
	if !ok || lc.Content.Mode != config.ModeSlides {
		return "", false
	}
	return filepath.Join(r.cfg.AssetRoot, filepath.FromSlash(lc.Content.SlidesDir)), true
}
