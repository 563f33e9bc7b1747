package main

import (
	"github.com/spf13/cobra"

	"github.com/johnwards/caretrain/internal/client"
)

func runRegisterDemo(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	return client.RunDemoRegistration(cmd.Context(), client.New(cfg.APIBase), cmd.OutOrStdout(), logger)
}
