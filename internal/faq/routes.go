package faq

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leasemint/dataroom/internal/i18n"
)

// faqEntry is one entry in the /api/faq response, with the answer already
// rendered to HTML.
type faqEntry struct {
	Question   string `json:"question"`
	AnswerHTML string `json:"answerHtml"`
}

// RegisterRoutes mounts the FAQ endpoint on the given router.
func RegisterRoutes(r chi.Router, catalog *Catalog) {
	r.Get("/api/faq/{lang}", handleFAQ(catalog))
}

func handleFAQ(catalog *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.Language(chi.URLParam(r, "lang"))
		if !lang.Valid() {
			http.Error(w, "unknown language", http.StatusNotFound)
			return
		}

		entries := catalog.Entries(lang)
		out := make([]faqEntry, 0, len(entries))
		for _, e := range entries {
			html, err := AnswerHTML(e)
			if err != nil {
				continue
			}
			out = append(out, faqEntry{Question: e.Question, AnswerHTML: string(html)})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	}
}
