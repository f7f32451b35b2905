package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entity-admin",
		Short: "Node store administration: schema, id reservation, tree inspection",
	}
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newReserveCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newTreeCmd())
	return cmd
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
