package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/leasemint/dataroom/internal/config"
	"github.com/leasemint/dataroom/internal/content"
	"github.com/leasemint/dataroom/internal/i18n"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration and content layout",
	Long: `Loads the configuration, validates it and reports what the portal
would serve for each language. The access password is reported as present
or absent, never printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		fmt.Printf("Config: %s\n", cfgFile)
		fmt.Printf("  Port: %d\n", cfg.Port)
		fmt.Printf("  Assets: %s\n", cfg.AssetRoot)
		if cfg.HasPassword() {
			fmt.Println("  Access password: configured")
		} else {
			fmt.Println("  Access password: NOT configured (set DATAROOM_ACCESS_PASSWORD)")
		}

		resolver := content.NewResolver(cfg)
		for _, lang := range i18n.Languages {
			lc, ok := cfg.Language(lang)
			if !ok {
				continue
			}
			fmt.Printf("Language %s (%s):\n", lang, lang.PagePath())

			src := resolver.Resolve(lang)
			switch src.Mode {
			case content.ModeDeck:
				fmt.Printf("  Slides: %d\n", len(src.Slides))
			case content.ModeEmbedded:
				fmt.Printf("  Embedded presentation: %s\n", src.EmbedURL)
			}

			asset := filepath.Join(cfg.AssetRoot, filepath.FromSlash(lc.DownloadPath))
			if _, err := os.Stat(asset); err != nil {
				fmt.Printf("  Download: MISSING (%s)\n", asset)
			} else {
				fmt.Printf("  Download: %s\n", asset)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
