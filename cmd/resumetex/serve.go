package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwhitlatch/resumetex/internal/config"
	"github.com/mwhitlatch/resumetex/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for rendering resume documents to LaTeX.`,
	RunE:  runServe,
}

var (
	servePort       int
	serveStoreURL   string
	serveStoreToken string
	serveConfigPath string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveStoreURL, "store-url", "", "Document store base URL (optional, defaults to RESUMETEX_STORE_URL env var)")
	serveCmd.Flags().StringVar(&serveStoreToken, "store-token", "", "Document store bearer token (optional, defaults to RESUMETEX_STORE_TOKEN env var)")
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to JSON config file")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Load config file if provided
	var cfg config.Config
	if serveConfigPath != "" {
		loadedCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	// Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("store-url") {
		cfg.StoreURL = serveStoreURL
	}
	if cmd.Flags().Changed("store-token") {
		cfg.StoreToken = serveStoreToken
	}

	// Environment fallbacks for store access
	if cfg.StoreURL == "" {
		cfg.StoreURL = os.Getenv("RESUMETEX_STORE_URL")
	}
	if cfg.StoreToken == "" {
		cfg.StoreToken = os.Getenv("RESUMETEX_STORE_TOKEN")
	}

	cfg = cfg.MergeWithDefaults(config.DefaultConfig())

	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.StoreURL == "" {
		fmt.Fprintln(os.Stderr, "Warning: no document store configured; GET /documents/{id}/latex will fail")
	}

	srv := server.New(server.Config{
		Port:         cfg.Port,
		StoreURL:     cfg.StoreURL,
		StoreToken:   cfg.StoreToken,
		FetchTimeout: time.Duration(cfg.FetchTimeout) * time.Second,
	})

	return srv.Start()
}
