package main

import (
	"github.com/spf13/cobra"

	entitymodule "github.com/kanansalman/Umbraco-CMS/modules/entity"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the node store schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := connectDB(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			if _, err := pool.Exec(cmd.Context(), entitymodule.SchemaSQL()); err != nil {
				return err
			}
			cmd.Println("schema applied")
			return nil
		},
	}
}
