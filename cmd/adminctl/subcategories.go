package main

import (
	"context"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/client"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/subcategory"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
)

func newSubCategoriesCmd(opts *options) *cobra.Command {
	var categoryID, parentID string

	cmd := &cobra.Command{
		Use:     "subcategories",
		Aliases: []string{"subcategory", "subs"},
		Short:   "Subcategorias (nível 2 em diante)",
		Long: `Subcategorias de uma categoria. Sem --parent, opera sobre as subcategorias de nível 2;
com --parent, sobre os filhos diretos daquela subcategoria.`,
	}
	cmd.PersistentFlags().StringVar(&categoryID, "category", "", "ID da categoria de serviço")
	cmd.PersistentFlags().StringVar(&parentID, "parent", "", "ID da subcategoria pai (opcional)")

	siblings := func(ctx context.Context, c *client.Client) ([]*subcategory.SubCategory, error) {
		catID, err := parseFlagID("category", categoryID)
		if err != nil {
			return nil, err
		}
		var parent *ulid.ULID
		if parentID != "" {
			id, err := parseFlagID("parent", parentID)
			if err != nil {
				return nil, err
			}
			parent = &id
		}
		return c.SubCategorySiblings(ctx, catID, parent)
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Lista as subcategorias irmãs na ordem de exibição",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subs, err := siblings(cmd.Context(), opts.client())
			if err != nil {
				return err
			}
			return opts.printer(cmd).print(subs, subCategoryTable(subs))
		},
	}

	move := &cobra.Command{
		Use:   "move <oldIndex> <newIndex>",
		Short: "Move uma subcategoria entre as irmãs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.client()
			subs, err := siblings(cmd.Context(), c)
			if err != nil {
				return err
			}
			return runMove(cmd, opts.printer(cmd), subs, c.SubCategoryOrderPersister(), args, subCategoryTable)
		},
	}

	cmd.AddCommand(list, move)
	return cmd
}
