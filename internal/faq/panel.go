package faq

import "github.com/leasemint/dataroom/internal/i18n"

// Panel is the drawer's view state: the search string and each entry's
// expansion flag. Closing the panel does not reset either; reopening within
// the same tab session resumes where the user left off.
type Panel struct {
	lang     i18n.Language
	catalog  *Catalog
	search   string
	expanded map[int]bool
}

// NewPanel creates a panel over the catalog for one language.
func NewPanel(lang i18n.Language, catalog *Catalog) *Panel {
	return &Panel{
		lang:     lang,
		catalog:  catalog,
		expanded: make(map[int]bool),
	}
}

// SetSearch updates the search string.
func (p *Panel) SetSearch(q string) { p.search = q }

// Search returns the current search string.
func (p *Panel) Search() string { return p.search }

// Visible computes the filtered view for the current search string.
func (p *Panel) Visible() []Entry {
	return Filter(p.catalog.Entries(p.lang), p.search)
}

// Toggle flips the expansion flag of the entry at the given position in the
// full (unfiltered) list. Other entries keep their state; any number may be
// expanded at once.
func (p *Panel) Toggle(index int) {
	if index < 0 || index >= len(p.catalog.Entries(p.lang)) {
		return
	}
	p.expanded[index] = !p.expanded[index]
}

// Expanded reports whether the entry at the given position is expanded.
func (p *Panel) Expanded(index int) bool {
	return p.expanded[index]
}
