package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/leasemint/dataroom/internal/config"
	"github.com/leasemint/dataroom/internal/content"
	"github.com/leasemint/dataroom/internal/faq"
	"github.com/leasemint/dataroom/internal/server"
	"github.com/leasemint/dataroom/internal/site"
	"github.com/leasemint/dataroom/internal/verify"
)

var (
	servePort     int
	serveAllowAll bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the data room server",
	Long: `Starts the data room portal: landing page, per-language gated pages,
the password verification API and the content API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Local development keeps the access password in a .env file; a
		// missing file is fine in deployed environments.
		_ = godotenv.Load()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if servePort != 0 {
			cfg.Port = servePort
		}
		if serveAllowAll {
			cfg.AllowAllCORS = true
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if !cfg.HasPassword() {
			fmt.Fprintln(os.Stderr, "Warning: no access password configured; all verification attempts will fail")
		}

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllCORS,
		})

		// Register all feature routes.
		r := srv.Router()
		verify.RegisterRoutes(r, func() string { return cfg.AccessPassword })
		content.RegisterRoutes(r, content.NewResolver(cfg))
		faq.RegisterRoutes(r, faq.LoadCatalog(cfg.AssetRoot))
		site.RegisterRoutes(r, cfg)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "dataroom v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Assets: %s\n", cfg.AssetRoot)

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all-cors", false, "Allow all CORS origins (dev mode)")
	rootCmd.AddCommand(serveCmd)
}
