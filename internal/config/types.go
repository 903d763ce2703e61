package config

import "github.com/leasemint/dataroom/internal/i18n"

// DeliveryMode selects how a language's gated material is served.
type DeliveryMode string

const (
	// ModeSlides serves an ordered deck of local slide images.
	ModeSlides DeliveryMode = "slides"
	// ModeEmbedded embeds an externally hosted presentation.
	ModeEmbedded DeliveryMode = "embedded"
)

// ContentConfig describes one language's content source. Exactly one of
// SlidesDir or EmbedURL is consulted, depending on Mode.
type ContentConfig struct {
	Mode      DeliveryMode `yaml:"mode" koanf:"mode"`
	SlidesDir string       `yaml:"slides_dir" koanf:"slides_dir"`
	EmbedURL  string       `yaml:"embed_url" koanf:"embed_url"`
}

// LanguageConfig holds everything the portal serves for one language.
type LanguageConfig struct {
	Content         ContentConfig `yaml:"content" koanf:"content"`
	DownloadPath    string        `yaml:"download_path" koanf:"download_path"`
	PresentationURL string        `yaml:"presentation_url" koanf:"presentation_url"`
	KYCURL          string        `yaml:"kyc_url" koanf:"kyc_url"`
}

// ContactConfig holds the support address split into parts. The address is
// only ever assembled at render/click time.
type ContactConfig struct {
	User   string `yaml:"user" koanf:"user"`
	Domain string `yaml:"domain" koanf:"domain"`
}

// Config is the top-level portal configuration, corresponding to dataroom.yml.
// AccessPassword is deliberately excluded from YAML serialization; it is
// expected to arrive through the environment.
type Config struct {
	Port           int    `yaml:"port" koanf:"port"`
	AssetRoot      string `yaml:"asset_root" koanf:"asset_root"`
	AccessPassword string `yaml:"-" koanf:"access_password"`
	AllowAllCORS   bool   `yaml:"allow_all_cors" koanf:"allow_all_cors"`

	Languages map[i18n.Language]LanguageConfig `yaml:"languages" koanf:"languages"`
	Contact   ContactConfig                    `yaml:"contact" koanf:"contact"`
}

// Language returns the configuration for the given language.
func (c *Config) Language(lang i18n.Language) (LanguageConfig, bool) {
	lc, ok := c.Languages[lang]
	return lc, ok
}
