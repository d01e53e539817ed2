package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/contracts"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/ordering"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
)

func parseIndexes(args []string) (int, int, error) {
	oldIndex, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("índice de origem inválido %q", args[0])
	}
	newIndex, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("índice de destino inválido %q", args[1])
	}
	return oldIndex, newIndex, nil
}

func parseFlagID(name, raw string) (ulid.ULID, error) {
	id, err := pkg.ParseULID(raw)
	if err != nil {
		return ulid.ULID{}, fmt.Errorf("--%s: %w", name, err)
	}
	return id, nil
}

// runMove aplica o movimento numa SiblingList local e persiste o diff pela API.
// Se a gravação falhar, imprime a lista restaurada e devolve o erro.
func runMove[T ordering.Ordered[T]](
	cmd *cobra.Command,
	p *printer,
	siblings []T,
	persister ordering.Persister,
	args []string,
	render func([]T) table,
) error {
	oldIndex, newIndex, err := parseIndexes(args)
	if err != nil {
		return err
	}

	list := ordering.NewSiblingList(siblings)
	res, err := list.Move(cmd.Context(), persister, oldIndex, newIndex)
	if err != nil {
		var persistErr *ordering.ReorderPersistenceError
		if errors.As(err, &persistErr) {
			fmt.Fprintln(cmd.ErrOrStderr(), "falha ao salvar a nova ordem; lista restaurada:")
			restored := list.Items()
			if printErr := p.print(contracts.OrderResponse[T]{Items: restored}, render(restored)); printErr != nil {
				return errors.Join(err, printErr)
			}
		}
		return err
	}

	if len(res.Updates) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "nenhuma alteração de ordem")
	}
	return p.print(contracts.NewMoveResponse(res), render(res.Reordered))
}
