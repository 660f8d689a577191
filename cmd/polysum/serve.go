package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/polysum/internal/config"
	"github.com/jonathan/polysum/internal/server"
)

var (
	servePort       int
	serveConfigPath string
	serveDebug      bool
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes /summarize and /summarize/stream endpoints for running the summarization pipeline.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config file (.json, .yaml or .yml)")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Include agent results in every response")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed agent output for each request")
	rootCmd.AddCommand(serveCmd)
}

// serverConfig merges file, environment and flag settings into a server configuration
func serverConfig(cmd *cobra.Command) (server.Config, error) {
	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return server.Config{}, err
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = serveDebug
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = serveVerbose
	}
	if err := cfg.Validate(); err != nil {
		return server.Config{}, err
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())

	return server.Config{
		Port:           cfg.Port,
		MinChars:       cfg.MinChars,
		MaxChars:       cfg.MaxChars,
		Debug:          cfg.Debug,
		Verbose:        cfg.Verbose,
		AllowedOrigins: cfg.AllowedOrigins,
	}, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := serverConfig(cmd)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
