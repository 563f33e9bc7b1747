package main

import (
	"github.com/spf13/cobra"
)

func runInit(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	db, err := openAndInitialize(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	logger.Info("database initialized", "driver", cfg.DBDriver)
	return nil
}
