package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/category"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/taxonomy"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(opts *options) *cobra.Command {
	var sectorID string

	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category"},
		Short:   "Categorias de serviço de um setor",
	}
	cmd.PersistentFlags().StringVar(&sectorID, "sector", "", "ID do setor")

	list := &cobra.Command{
		Use:   "list",
		Short: "Lista as categorias do setor na ordem de exibição",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseFlagID("sector", sectorID)
			if err != nil {
				return err
			}
			categories, err := opts.client().CategorySiblings(cmd.Context(), id)
			if err != nil {
				return err
			}
			return opts.printer(cmd).print(categories, categoryTable(categories))
		},
	}

	move := &cobra.Command{
		Use:   "move <oldIndex> <newIndex>",
		Short: "Move uma categoria dentro do setor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseFlagID("sector", sectorID)
			if err != nil {
				return err
			}
			c := opts.client()
			categories, err := c.CategorySiblings(cmd.Context(), id)
			if err != nil {
				return err
			}
			return runMove(cmd, opts.printer(cmd), categories, c.CategoryOrderPersister(), args, categoryTable)
		},
	}

	depth := &cobra.Command{
		Use:   "depth <categoryId> <level>",
		Short: "Altera a profundidade da categoria (3 a 7)",
		Long: `Altera a profundidade da categoria. Níveis novos recebem o primeiro tipo de atributo
ainda não usado; níveis removidos saem do mapeamento.

Examples:
  adminctl categories depth 01J9Z3V4B0Q8W2X5Y7Z9A1B2C3 5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseFlagID("categoryId", args[0])
			if err != nil {
				return err
			}
			level, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("nível inválido %q", args[1])
			}
			updated, err := opts.client().SetCategoryDepth(cmd.Context(), id, level)
			if err != nil {
				return err
			}
			return opts.printer(cmd).print(updated, categoryTable([]*category.ServiceCategory{updated}))
		},
	}

	mapping := &cobra.Command{
		Use:   "mapping <categoryId> <level=attributeType>...",
		Short: "Substitui o mapeamento de níveis da categoria",
		Long: `Substitui o categoryLevelMapping da categoria. Subcategorias já existentes nos níveis
alterados recebem o novo tipo de atributo.

Examples:
  adminctl categories mapping 01J9Z3V4B0Q8W2X5Y7Z9A1B2C3 3=make 4=model`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseFlagID("categoryId", args[0])
			if err != nil {
				return err
			}
			levels, err := parseMapping(args[1:])
			if err != nil {
				return err
			}
			updated, err := opts.client().ReplaceCategoryMapping(cmd.Context(), id, levels)
			if err != nil {
				return err
			}
			return opts.printer(cmd).print(updated, categoryTable([]*category.ServiceCategory{updated}))
		},
	}

	cmd.AddCommand(list, move, depth, mapping)
	return cmd
}

// parseMapping lê pares "nível=tipo"; a validação completa do mapeamento fica com a API.
func parseMapping(args []string) (taxonomy.LevelMapping, error) {
	mapping := make(taxonomy.LevelMapping, 0, len(args))
	for _, arg := range args {
		rawLevel, rawType, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("entrada de mapeamento inválida %q (use nível=tipo)", arg)
		}
		level, err := strconv.Atoi(strings.TrimSpace(rawLevel))
		if err != nil {
			return nil, fmt.Errorf("nível inválido %q", rawLevel)
		}
		attr, err := taxonomy.ParseAttributeType(strings.TrimSpace(rawType))
		if err != nil {
			return nil, err
		}
		mapping = append(mapping, taxonomy.LevelAttribute{Level: level, AttributeType: attr})
	}
	return mapping, nil
}
