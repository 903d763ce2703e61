package faq

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/leasemint/dataroom/internal/i18n"
)

func testCatalog() *Catalog {
	return NewCatalog(map[i18n.Language][]Entry{
		i18n.LangEN: {
			{Question: "What is LeaseMint?", Answer: "A fintech platform."},
			{Question: "Is LeaseMint compliant?", Answer: "Full KYC/AML processes."},
			{Question: "Why now?", Answer: "Market timing."},
		},
	})
}

func TestFilterEmptyQueryReturnsAllInOrder(t *testing.T) {
	entries := testCatalog().Entries(i18n.LangEN)

	got := Filter(entries, "")
	if len(got) != len(entries) {
		t.Fatalf("expected all %d entries, got %d", len(entries), len(got))
	}
	for i := range got {
		if got[i].Question != entries[i].Question {
			t.Errorf("entry %d out of order: %q", i, got[i].Question)
		}
	}
}

func TestFilterMatchesSingleEntry(t *testing.T) {
	entries := testCatalog().Entries(i18n.LangEN)

	got := Filter(entries, "compliant")
	if len(got) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(got))
	}
	if got[0].Question != "Is LeaseMint compliant?" {
		t.Errorf("wrong entry matched: %q", got[0].Question)
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	entries := testCatalog().Entries(i18n.LangEN)

	upper := Filter(entries, "KYC")
	lower := Filter(entries, "kyc")
	if len(upper) != 1 || len(lower) != 1 {
		t.Fatalf("expected one match for both cases, got %d and %d", len(upper), len(lower))
	}
	if upper[0].Question != lower[0].Question {
		t.Error("case variants must return the same results")
	}
}

func TestFilterMatchesAnswers(t *testing.T) {
	entries := testCatalog().Entries(i18n.LangEN)

	got := Filter(entries, "timing")
	if len(got) != 1 || got[0].Question != "Why now?" {
		t.Errorf("expected answer-substring match on %q, got %v", "Why now?", got)
	}
}

func TestPanelRetainsStateAcrossReopen(t *testing.T) {
	p := NewPanel(i18n.LangEN, testCatalog())

	p.SetSearch("leasemint")
	p.Toggle(0)
	p.Toggle(2)

	// Closing and reopening the drawer is the caller's concern; the panel
	// simply keeps its state within the tab session.
	if p.Search() != "leasemint" {
		t.Errorf("search lost: %q", p.Search())
	}
	if !p.Expanded(0) || !p.Expanded(2) {
		t.Error("expansion flags lost")
	}
	if p.Expanded(1) {
		t.Error("untouched entry must stay collapsed")
	}

	// Toggling one entry leaves the others alone.
	p.Toggle(0)
	if p.Expanded(0) {
		t.Error("expected entry 0 collapsed after second toggle")
	}
	if !p.Expanded(2) {
		t.Error("entry 2 must keep its own state")
	}
}

func TestLoadCatalogDefaultsAndOverride(t *testing.T) {
	root := t.TempDir()

	// No override files: built-in copy.
	catalog := LoadCatalog(root)
	if len(catalog.Entries(i18n.LangEN)) == 0 || len(catalog.Entries(i18n.LangFR)) == 0 {
		t.Fatal("expected built-in entries for both languages")
	}

	// An override replaces one language only.
	faqDir := filepath.Join(root, "faq")
	if err := os.MkdirAll(faqDir, 0755); err != nil {
		t.Fatal(err)
	}
	override := "- question: Only question\n  answer: Only answer\n"
	if err := os.WriteFile(filepath.Join(faqDir, "en.yml"), []byte(override), 0644); err != nil {
		t.Fatal(err)
	}

	catalog = LoadCatalog(root)
	en := catalog.Entries(i18n.LangEN)
	if len(en) != 1 || en[0].Question != "Only question" {
		t.Errorf("expected override entries, got %v", en)
	}
	if len(catalog.Entries(i18n.LangFR)) == 0 {
		t.Error("fr must keep built-in entries")
	}

	// A malformed override degrades to the built-in copy.
	if err := os.WriteFile(filepath.Join(faqDir, "en.yml"), []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}
	catalog = LoadCatalog(root)
	if len(catalog.Entries(i18n.LangEN)) <= 1 {
		t.Error("malformed override must fall back to defaults")
	}
}

func TestAnswerHTMLRendersMarkdown(t *testing.T) {
	html, err := AnswerHTML(Entry{Answer: "Points:\n\n- one\n- two"})
	if err != nil {
		t.Fatalf("AnswerHTML failed: %v", err)
	}
	if !strings.Contains(string(html), "<li>one</li>") {
		t.Errorf("expected rendered list, got %q", html)
	}
}

func TestFAQEndpoint(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, testCatalog())

	req := httptest.NewRequest(http.MethodGet, "/api/faq/en", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var entries []faqEntry
	if err := json.NewDecoder(rec.Body).Decode(&entries); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("expected 3 entries, got %d", len(entries))
	}

	req = httptest.NewRequest(http.MethodGet, "/api/faq/xx", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown language, got %d", rec.Code)
	}
}
