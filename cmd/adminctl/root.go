package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/client"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	envAPIURL = "ADMIN_API_URL"
	envAPIKey = "ADMIN_API_KEY"
)

type options struct {
	apiURL  string
	apiKey  string
	output  string
	verbose bool
}

var errUnsupportedFormat = errors.New("formato de saída não suportado")

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "adminctl",
		Short:         "Administra a taxonomia de serviços",
		Long:          "adminctl lista e reordena setores, categorias e subcategorias pela API administrativa.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetOutput(os.Stderr)
			level := zerolog.WarnLevel
			if opts.verbose {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)

			switch opts.output {
			case formatTable, formatJSON, formatYAML:
				return nil
			}
			return fmt.Errorf("%w: %s", errUnsupportedFormat, opts.output)
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", envOr(envAPIURL, "http://localhost:8080"), "URL base da API ($"+envAPIURL+")")
	root.PersistentFlags().StringVar(&opts.apiKey, "api-key", os.Getenv(envAPIKey), "chave administrativa ($"+envAPIKey+")")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", formatTable, "formato de saída: table|json|yaml")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "mostra as chamadas HTTP")

	root.AddCommand(
		newSectorsCmd(opts),
		newCategoriesCmd(opts),
		newSubCategoriesCmd(opts),
		newAttributeTypesCmd(opts),
		newHashKeyCmd(),
	)
	return root
}

func (o *options) client() *client.Client {
	return client.New(o.apiURL, o.apiKey)
}

func (o *options) printer(cmd *cobra.Command) *printer {
	return newPrinter(cmd.OutOrStdout(), o.output)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
