package config

import "github.com/leasemint/dataroom/internal/i18n"

// DefaultConfig returns a Config with sensible defaults. Content sources
// point at the conventional asset layout under asset_root.
func DefaultConfig() *Config {
	return &Config{
		Port:      8080,
		AssetRoot: "assets",
		Languages: map[i18n.Language]LanguageConfig{
			i18n.LangEN: {
				Content: ContentConfig{
					Mode:      ModeSlides,
					SlidesDir: "slides/en",
				},
				DownloadPath: "pdf/en/leasemintVC2026EN.pdf",
			},
			i18n.LangFR: {
				Content: ContentConfig{
					Mode:      ModeSlides,
					SlidesDir: "slides/fr",
				},
				DownloadPath: "pdf/fr/leasemintVC2026FR.pdf",
			},
		},
		Contact: ContactConfig{
			User:   "manu",
			Domain: "leasemint.ai",
		},
	}
}
