package site

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/leasemint/dataroom/internal/config"
)

func testRouter(t *testing.T, cfg *config.Config) chi.Router {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, cfg)
	return r
}

func get(t *testing.T, r chi.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLandingPage(t *testing.T) {
	r := testRouter(t, config.DefaultConfig())

	rec := get(t, r, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `href="/vc_en"`) || !strings.Contains(body, `href="/vc_fr"`) {
		t.Error("landing page must link both portal entry points")
	}
}

func TestPortalPages(t *testing.T) {
	cfg := config.DefaultConfig()
	en := cfg.Languages["en"]
	en.KYCURL = "https://kyc.example.com"
	cfg.Languages["en"] = en
	r := testRouter(t, cfg)

	rec := get(t, r, "/vc_en")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `data-lang="en"`) {
		t.Error("portal page must carry its language")
	}
	if !strings.Contains(body, `data-switch-path="/vc_fr"`) {
		t.Error("portal page must carry the sibling entry point")
	}
	if !strings.Contains(body, "Investor Access") {
		t.Error("expected english access copy")
	}
	if !strings.Contains(body, "action-kyc") {
		t.Error("expected KYC action when configured")
	}
	if strings.Contains(body, "manu@leasemint.ai") {
		t.Error("contact address must never appear verbatim in markup")
	}
	if rec.Header().Get("X-Robots-Tag") == "" {
		t.Error("portal pages must opt out of indexing")
	}

	// The lean variant omits the KYC action.
	rec = get(t, r, "/vc_fr")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body = rec.Body.String()
	if strings.Contains(body, "action-kyc") {
		t.Error("KYC action must be absent when not configured")
	}
	if !strings.Contains(body, "Accès Investisseurs") {
		t.Error("expected french access copy")
	}
}

func TestStaticAssets(t *testing.T) {
	r := testRouter(t, config.DefaultConfig())

	rec := get(t, r, "/static/style.css")
	if rec.Code != http.StatusOK || !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/css") {
		t.Errorf("stylesheet: %d %q", rec.Code, rec.Header().Get("Content-Type"))
	}

	rec = get(t, r, "/static/portal.js")
	if rec.Code != http.StatusOK {
		t.Fatalf("script: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "vc_auth_state") {
		t.Error("script must use the tab-scoped session key")
	}
}

func TestDownloadRoute(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.AssetRoot = t.TempDir()

	pdfPath := filepath.Join(cfg.AssetRoot, "pdf", "en")
	if err := os.MkdirAll(pdfPath, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(pdfPath, "leasemintVC2026EN.pdf"), []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatal(err)
	}

	r := testRouter(t, cfg)

	rec := get(t, r, "/download/en")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, `attachment; filename="leasemintVC2026EN.pdf"`) {
		t.Errorf("disposition: %q", got)
	}

	// Asset missing on disk.
	rec = get(t, r, "/download/fr")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing asset, got %d", rec.Code)
	}
}

func TestContactEndpoint(t *testing.T) {
	r := testRouter(t, config.DefaultConfig())

	var body map[string]string

	rec := get(t, r, "/api/contact/en")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(body["href"], "mailto:manu@leasemint.ai?subject=") {
		t.Errorf("contact href: %q", body["href"])
	}

	rec = get(t, r, "/api/contact/fr?intent=access")
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(body["href"], "Access%20Request") {
		t.Errorf("access-request href: %q", body["href"])
	}

	rec = get(t, r, "/api/contact/xx")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown language, got %d", rec.Code)
	}
}
