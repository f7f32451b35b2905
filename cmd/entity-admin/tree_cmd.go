package main

import (
	"strconv"

	"github.com/spf13/cobra"

	entitymodule "github.com/kanansalman/Umbraco-CMS/modules/entity"
	"github.com/kanansalman/Umbraco-CMS/modules/entity/domain/entities/entity"
	"github.com/kanansalman/Umbraco-CMS/pkg/composables"
)

func newTreeCmd() *cobra.Command {
	var deep bool

	cmd := &cobra.Command{
		Use:   "tree <id>",
		Short: "List children (or all descendants) of a node",
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

			var nodes []*entity.Entity
			if deep {
				nodes, err = mod.EntityService.GetDescendants(ctx, id)
			} else {
				nodes, err = mod.EntityService.GetChildren(ctx, id)
			}
			if err != nil {
				return err
			}
			return writeJSON(nodes)
		},
	}
	cmd.Flags().BoolVar(&deep, "deep", false, "list all descendants instead of direct children")
	return cmd
}
