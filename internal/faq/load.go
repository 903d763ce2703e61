package faq

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	"github.com/leasemint/dataroom/internal/i18n"
)

// LoadCatalog builds the catalog from faq/<lang>.yml files under the asset
// root, falling back to the built-in copy for any language without an
// override. A missing or unreadable file is not an error.
func LoadCatalog(assetRoot string) *Catalog {
	entries := make(map[i18n.Language][]Entry, len(i18n.Languages))
	for _, lang := range i18n.Languages {
		entries[lang] = defaultEntries[lang]

		path := filepath.Join(assetRoot, "faq", string(lang)+".yml")
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var loaded []Entry
		if err := yaml.Unmarshal(data, &loaded); err != nil || len(loaded) == 0 {
			continue
		}
		entries[lang] = loaded
	}
	return NewCatalog(entries)
}

// md renders FAQ answers. GFM covers the lists and emphasis the copy uses.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// AnswerHTML renders an entry's markdown answer to HTML.
func AnswerHTML(e Entry) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(e.Answer), &buf); err != nil {
		return "", fmt.Errorf("rendering answer: %w", err)
	}
	return template.HTML(buf.String()), nil
}
