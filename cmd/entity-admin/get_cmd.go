package main

import (
	"strconv"

	"github.com/spf13/cobra"

	entitymodule "github.com/kanansalman/Umbraco-CMS/modules/entity"
	"github.com/kanansalman/Umbraco-CMS/pkg/composables"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Resolve a node by its integer id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
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
			e, err := mod.EntityService.Get(ctx, id)
			if err != nil {
				return err
			}
			return writeJSON(e)
		},
	}
}
