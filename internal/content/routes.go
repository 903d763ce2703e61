package content

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leasemint/dataroom/internal/i18n"
)

// RegisterRoutes mounts the content API and the slide image routes on the
// given router.
func RegisterRoutes(r chi.Router, resolver *Resolver) {
	r.Get("/api/content/{lang}", handleContent(resolver))

	for _, lang := range i18n.Languages {
		if dir, ok := resolver.SlidesDir(lang); ok {
			prefix := SlideURLPrefix + "/" + string(lang)
			fs := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
			r.Handle(prefix+"/*", fs)
		}
	}
}

// handleContent returns the resolved content source for the language as
// JSON. The slide list is recomputed on each request.
func handleContent(resolver *Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.Language(chi.URLParam(r, "lang"))
		if !lang.Valid() {
			http.Error(w, "unknown language", http.StatusNotFound)
			return
		}

		src := resolver.Resolve(lang)
		resp := map[string]any{"mode": src.Mode}
		switch src.Mode {
		case ModeDeck:
			slides := src.Slides
			if slides == nil {
				// An empty deck is an explicit empty list, not an error.
				slides = []Slide{}
			}
			resp["slides"] = slides
		case ModeEmbedded:
			resp["embedUrl"] = src.EmbedURL
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
