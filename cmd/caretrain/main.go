package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johnwards/caretrain/internal/config"
	"github.com/johnwards/caretrain/internal/database"
	"github.com/johnwards/caretrain/internal/schema"
	"github.com/johnwards/caretrain/internal/seed"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "caretrain",
		Short:         "Care-worker training database and API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Initialize the database and start the HTTP API",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "init",
			Short: "Apply the schema, seed baseline data and reset demo passwords",
			RunE:  runInit,
		},
		&cobra.Command{
			Use:   "register-demo",
			Short: "Register the demo trainee account against API_BASE",
			RunE:  runRegisterDemo,
		},
	)
	return rootCmd
}

// setup loads configuration and installs the default logger.
func setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(cfg)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func newLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// openAndInitialize opens the configured database and brings it to a usable
// state. The caller closes the returned DB.
func openAndInitialize(ctx context.Context, cfg config.Config, logger *slog.Logger) (*database.DB, error) {
	db, err := database.Open(ctx, cfg.DBDriver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	var loader schema.Loader
	if strings.HasPrefix(cfg.SchemaLocation, "s3://") {
		client, err := schema.NewS3Client(ctx, schema.S3Config{
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
		})
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create s3 client: %w", err)
		}
		loader.S3 = client
	}

	if err := seed.Initialize(ctx, db, seed.Options{
		SchemaLocation: cfg.SchemaLocation,
		DemoPassword:   cfg.DemoPassword,
		Loader:         loader,
		Logger:         logger,
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
