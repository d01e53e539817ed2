package shared

import (
	"context"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/ordering"
	appErrors "github.com/jupiter96/tradespeoplehub-sub000/internal/errors"
)

// OrderWriter é implementado pelos repositórios que gravam o diff de ordem numa transação.
type OrderWriter interface {
	UpdateOrders(ctx context.Context, updates []ordering.Update) error
}

// MoveSiblings é o único caminho de reordenação por arrastar e soltar para setores,
// categorias e subcategorias.
func MoveSiblings[T ordering.Ordered[T]](ctx context.Context, siblings []T, oldIndex, newIndex int, writer OrderWriter) (ordering.Result[T], error) {
	list := ordering.NewSiblingList(siblings)
	return list.Move(ctx, ordering.PersisterFunc(writer.UpdateOrders), oldIndex, newIndex)
}

// ValidateOrderUpdates confere um diff {id, order} enviado pelo painel contra o grupo de irmãos.
func ValidateOrderUpdates[T ordering.Ordered[T]](siblings []T, updates []ordering.Update) error {
	if len(updates) == 0 {
		return appErrors.NewValidationError("items", "itens é obrigatório")
	}

	seen := make(map[string]bool, len(updates))
	for _, u := range updates {
		if !ordering.IsSaneOrder(u.Order) {
			return appErrors.NewValidationError("order", "ordem deve estar entre 1 e 9999").
				WithDetails(map[string]interface{}{"field": "order", "id": u.ID, "order": u.Order})
		}
		if seen[u.ID] {
			return appErrors.NewValidationError("items", "item repetido na lista").
				WithDetails(map[string]interface{}{"field": "items", "id": u.ID})
		}
		seen[u.ID] = true
	}

	applied, missing := ordering.ApplyUpdates(siblings, updates)
	if len(missing) > 0 {
		return appErrors.NewValidationError("items", "itens não pertencem ao mesmo grupo").
			WithDetails(map[string]interface{}{"field": "items", "ids": missing})
	}
	if dups := ordering.DuplicateOrders(applied); len(dups) > 0 {
		return appErrors.NewValidationError("order", "ordem repetida entre itens do mesmo grupo").
			WithDetails(map[string]interface{}{"field": "order", "orders": dups})
	}
	return nil
}

// PersistOrderUpdates grava um diff já validado, convertendo a falha em ReorderPersistenceError.
func PersistOrderUpdates(ctx context.Context, updates []ordering.Update, writer OrderWriter) error {
	if err := writer.UpdateOrders(ctx, updates); err != nil {
		return &ordering.ReorderPersistenceError{Updates: updates, Err: err}
	}
	return nil
}
