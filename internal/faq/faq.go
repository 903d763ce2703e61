// Package faq provides the searchable investor FAQ: a static ordered list
// of question/answer pairs per language, filtered in memory.
package faq

import (
	"strings"

	"github.com/leasemint/dataroom/internal/i18n"
)

// Entry is one question/answer pair. Entries have no identity beyond their
// position and are never mutated at runtime.
type Entry struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Catalog holds the FAQ entries for every language.
type Catalog struct {
	entries map[i18n.Language][]Entry
}

// NewCatalog builds a catalog from per-language entry lists.
func NewCatalog(entries map[i18n.Language][]Entry) *Catalog {
	return &Catalog{entries: entries}
}

// Entries returns the ordered list for the language.
func (c *Catalog) Entries(lang i18n.Language) []Entry {
	return c.entries[lang]
}

// Filter returns the entries whose question or answer contains the query,
// case-insensitively, preserving original order. An empty query includes
// every entry. The list is filtered, never altered.
func Filter(entries []Entry, query string) []Entry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return entries
	}

	var out []Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Question), query) ||
			strings.Contains(strings.ToLower(e.Answer), query) {
			out = append(out, e)
		}
	}
	return out
}
