package site

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/leasemint/dataroom/internal/config"
	"github.com/leasemint/dataroom/internal/gate"
	"github.com/leasemint/dataroom/internal/i18n"
	"github.com/leasemint/dataroom/internal/mailto"
	"github.com/leasemint/dataroom/internal/menu"
)

// RegisterRoutes mounts the HTML pages, static assets, download routes and
// the contact-link endpoint.
func RegisterRoutes(r chi.Router, cfg *config.Config) {
	r.Get("/", handleLanding)
	r.Get("/static/style.css", handleStatic("text/css; charset=utf-8", cssContent))
	r.Get("/static/portal.js", handleStatic("application/javascript; charset=utf-8", jsContent))

	for _, lang := range i18n.Languages {
		lc, ok := cfg.Language(lang)
		if !ok {
			continue
		}
		r.Get(lang.PagePath(), handlePortal(lang, lc))
		r.Get("/download/"+string(lang), handleDownload(cfg.AssetRoot, lc.DownloadPath))
	}

	contact := mailto.Address{User: cfg.Contact.User, Domain: cfg.Contact.Domain}
	r.Get("/api/contact/{lang}", handleContact(contact))
}

func handleLanding(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := landingTmpl.Execute(w, landingData{Brand: brand, Year: time.Now().Year()}); err != nil {
		log.Printf("rendering landing page: %v", err)
	}
}

func handlePortal(lang i18n.Language, lc config.LanguageConfig) http.HandlerFunc {
	data := newPortalData(lang, lc)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("X-Robots-Tag", "noindex, nofollow")
		if err := portalTmpl.Execute(w, data); err != nil {
			log.Printf("rendering %s portal page: %v", lang, err)
		}
	}
}

func handleStatic(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

// handleDownload serves the language's asset with an attachment disposition
// so the browser downloads rather than renders it.
func handleDownload(assetRoot, downloadPath string) http.HandlerFunc {
	full := filepath.Join(assetRoot, filepath.FromSlash(downloadPath))
	name := filepath.Base(full)
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := os.Stat(full); err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
		http.ServeFile(w, r, full)
	}
}

// handleContact assembles the pre-filled mail link on request, so the
// address never appears verbatim in served markup.
func handleContact(contact mailto.Address) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.Language(chi.URLParam(r, "lang"))
		if !lang.Valid() {
			http.NotFound(w, r)
			return
		}

		var href string
		if r.URL.Query().Get("intent") == "access" {
			href = gate.AccessRequestLink(contact)
		} else {
			href = menu.ContactLink(lang, contact)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"href": href})
	}
}
