package main

import (
	"github.com/spf13/cobra"
)

func newSectorsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sectors",
		Aliases: []string{"sector"},
		Short:   "Setores (nível 1)",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Lista os setores na ordem de exibição",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sectors, err := opts.client().SectorSiblings(cmd.Context())
			if err != nil {
				return err
			}
			return opts.printer(cmd).print(sectors, sectorTable(sectors))
		},
	}

	move := &cobra.Command{
		Use:   "move <oldIndex> <newIndex>",
		Short: "Move um setor de posição e grava as novas ordens",
		Long: `Move o setor da posição oldIndex para newIndex (base zero, como exibido em "sectors list").

Examples:
  adminctl sectors move 0 2     # o primeiro setor passa a ser o terceiro`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.client()
			sectors, err := c.SectorSiblings(cmd.Context())
			if err != nil {
				return err
			}
			return runMove(cmd, opts.printer(cmd), sectors, c.SectorOrderPersister(), args, sectorTable)
		},
	}

	cmd.AddCommand(list, move)
	return cmd
}
