package main

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/middleware"

	"github.com/spf13/cobra"
)

func newAttributeTypesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "attribute-types",
		Short: "Mostra os tipos de atributo e os limites de profundidade",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.client().AttributeTypes(cmd.Context())
			if err != nil {
				return err
			}
			t := table{header: []string{"#", "ATTRIBUTE"}}
			for i, a := range res.AttributeTypes {
				t.rows = append(t.rows, []string{strconv.Itoa(i + 1), string(a)})
			}
			return opts.printer(cmd).print(res, t)
		},
	}
}

// newHashKeyCmd gera o hash bcrypt que vai em ADMIN_API_KEY_HASH no servidor.
func newHashKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-key [key]",
		Short: "Gera o hash bcrypt de uma chave administrativa",
		Long: `Gera o hash bcrypt de uma chave administrativa. Sem argumento, lê a chave da entrada padrão.

Examples:
  adminctl hash-key minha-chave
  echo -n minha-chave | adminctl hash-key`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var key string
			if len(args) == 1 {
				key = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return errors.New("nenhuma chave informada")
				}
				key = strings.TrimRight(line, "\r\n")
			}
			if strings.TrimSpace(key) == "" {
				return errors.New("a chave não pode ser vazia")
			}

			hash, err := middleware.HashAdminKey(key)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
}
