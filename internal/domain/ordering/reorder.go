package ordering

import (
	"errors"
	"fmt"
)

const (
	MinOrder = 1
	// Valores fora de (0, MaxSaneOrder) são tratados como lixo do backend.
	MaxSaneOrder = 10000
)

var ErrIndexOutOfRange = errors.New("ordering: index out of range")

// Update é uma alteração de ordem a ser persistida ({id, order}).
type Update struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// Ordered é implementado por qualquer irmão ordenável (setor, categoria, subcategoria).
type Ordered[T any] interface {
	OrderID() string
	OrderValue() int
	WithOrder(order int) T
}

type Result[T any] struct {
	Reordered []T
	Updates   []Update
}

// ComputeReorder move o elemento de oldIndex para newIndex e redistribui os valores de
// ordem existentes entre as posições afetadas, sem renumerar a lista inteira.
func ComputeReorder[T Ordered[T]](siblings []T, oldIndex, newIndex int) (Result[T], error) {
	n := len(siblings)
	if oldIndex < 0 || oldIndex >= n || newIndex < 0 || newIndex >= n {
		return Result[T]{}, fmt.Errorf("%w: move %d -> %d in list of %d", ErrIndexOutOfRange, oldIndex, newIndex, n)
	}

	reordered := make([]T, n)
	copy(reordered, siblings)
	if oldIndex == newIndex {
		return Result[T]{Reordered: reordered, Updates: []Update{}}, nil
	}

	moved := reordered[oldIndex]
	if oldIndex < newIndex {
		copy(reordered[oldIndex:newIndex], reordered[oldIndex+1:newIndex+1])
	} else {
		copy(reordered[newIndex+1:oldIndex+1], reordered[newIndex:oldIndex])
	}
	reordered[newIndex] = moved

	lo, hi := oldIndex, newIndex
	if lo > hi {
		lo, hi = hi, lo
	}

	changed := make(map[int]bool, hi-lo+1)
	for i := lo; i <= hi; i++ {
		original := siblings[i].OrderValue()
		if reordered[i].OrderValue() != original {
			reordered[i] = reordered[i].WithOrder(original)
			changed[i] = true
		}
	}

	// Ordens duplicadas ou fora de sequência vindas do backend: o irmão seguinte passa a
	// prev+1, em cascata até o fim da lista. Com ordens estritamente crescentes nada muda.
	for i := 1; i < n; i++ {
		prev := reordered[i-1].OrderValue()
		if reordered[i].OrderValue() > prev {
			continue
		}
		reordered[i] = reordered[i].WithOrder(prev + 1)
		changed[i] = true
	}

	updates := make([]Update, 0, len(changed))
	for i := range reordered {
		if changed[i] {
			updates = append(updates, Update{ID: reordered[i].OrderID(), Order: reordered[i].OrderValue()})
		}
	}

	return Result[T]{Reordered: reordered, Updates: updates}, nil
}

// NextOrder devolve a ordem de um novo irmão: max(order)+1, ou 1 se não houver ordens válidas.
func NextOrder[T Ordered[T]](siblings []T) int {
	highest := 0
	for _, s := range siblings {
		order := s.OrderValue()
		if !IsSaneOrder(order) {
			continue
		}
		if order > highest {
			highest = order
		}
	}
	if highest == 0 {
		return MinOrder
	}
	return highest + 1
}

func IsSaneOrder(order int) bool {
	return order > 0 && order < MaxSaneOrder
}

// ApplyUpdates aplica um diff {id, order} sobre uma lista, devolvendo uma cópia.
// Ids desconhecidos são reportados em missing.
func ApplyUpdates[T Ordered[T]](siblings []T, updates []Update) (out []T, missing []string) {
	byID := make(map[string]int, len(updates))
	for _, u := range updates {
		byID[u.ID] = u.Order
	}

	out = make([]T, len(siblings))
	seen := make(map[string]bool, len(updates))
	for i, s := range siblings {
		if order, ok := byID[s.OrderID()]; ok {
			out[i] = s.WithOrder(order)
			seen[s.OrderID()] = true
			continue
		}
		out[i] = s
	}

	for _, u := range updates {
		if !seen[u.ID] {
			missing = append(missing, u.ID)
		}
	}
	return out, missing
}

// DuplicateOrders devolve os valores de ordem usados por mais de um irmão.
func DuplicateOrders[T Ordered[T]](siblings []T) []int {
	counts := make(map[int]int, len(siblings))
	var dups []int
	for _, s := range siblings {
		counts[s.OrderValue()]++
		if counts[s.OrderValue()] == 2 {
			dups = append(dups, s.OrderValue())
		}
	}
	return dups
}
