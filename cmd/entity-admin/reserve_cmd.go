package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	entitymodule "github.com/kanansalman/Umbraco-CMS/modules/entity"
	"github.com/kanansalman/Umbraco-CMS/pkg/composables"
)

func newReserveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reserve <key>",
		Short: "Reserve an integer id for a UUID key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}

			pool, err := connectDB(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			ctx := composables.WithPool(cmd.Context(), pool)
			mod := entitymodule.NewModule(nil)
			id, err := mod.EntityService.ReserveID(ctx, key)
			if err != nil {
				return err
			}
			return writeJSON(map[string]any{"key": key, "id": id})
		},
	}
}
