package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/fin-tools/ledger-lens/pkg/server"
	"github.com/fin-tools/ledger-lens/pkg/services/config"
	"github.com/fin-tools/ledger-lens/pkg/services/directory"
	"github.com/fin-tools/ledger-lens/pkg/store/reportfs"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Ledger Lens web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.yaml",
		"Path to the server configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.LoadServerConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	registry, err := config.NewRegistry(cfg.ProfilesPath)
	if err != nil {
		return fmt.Errorf("failed to create profile registry: %w", err)
	}

	profile, err := registry.GetProfile(ctx, cfg.Profile)
	if err != nil {
		return fmt.Errorf("failed to resolve profile %q: %w", cfg.Profile, err)
	}

	reportRoot := cfg.ReportRoot
	if profile.ReportRoot != "" {
		reportRoot = profile.ReportRoot
	}

	store, err := reportfs.NewStore(reportfs.Settings{Root: reportRoot})
	if err != nil {
		return fmt.Errorf("failed to open report store: %w", err)
	}

	logger.Info().
		Str("profile", profile.Name).
		Str("provider", profile.Provider).
		Str("report_root", reportRoot).
		Msg("profile loaded")

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(cfg.Host, cfg.Port),
		ShutdownTimeout: time.Duration(cfg.ShutdownSeconds) * time.Second,
		Dependencies: server.Dependencies{
			Reports:   store,
			Directory: directory.NewService(*profile, store),
		},
	})

	return webAPI.Start()
}
