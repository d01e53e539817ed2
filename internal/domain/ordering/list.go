package ordering

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var ErrReorderInFlight = errors.New("ordering: a reorder is already being persisted")

// ReorderPersistenceError indica que a escrita remota falhou e a lista local foi revertida.
type ReorderPersistenceError struct {
	Updates []Update
	Err     error
}

func (e *ReorderPersistenceError) Error() string {
	return fmt.Sprintf("ordering: persisting %d order updates failed: %v", len(e.Updates), e.Err)
}

func (e *ReorderPersistenceError) Unwrap() error {
	return e.Err
}

type Persister interface {
	PersistOrder(ctx context.Context, updates []Update) error
}

type PersisterFunc func(ctx context.Context, updates []Update) error

func (f PersisterFunc) PersistOrder(ctx context.Context, updates []Update) error {
	return f(ctx, updates)
}

// SiblingList guarda a lista de irmãos exibida e aplica movimentos com reversão em caso de falha.
type SiblingList[T Ordered[T]] struct {
	mu       sync.Mutex
	items    []T
	inFlight bool
}

func NewSiblingList[T Ordered[T]](items []T) *SiblingList[T] {
	l := &SiblingList[T]{}
	l.items = clone(items)
	return l
}

func (l *SiblingList[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return clone(l.items)
}

func (l *SiblingList[T]) Replace(items []T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = clone(items)
}

func (l *SiblingList[T]) NextOrder() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return NextOrder(l.items)
}

// Move aplica o movimento de forma otimista e persiste o diff. Se a persistência falhar,
// a lista volta ao snapshot anterior e um *ReorderPersistenceError é devolvido.
func (l *SiblingList[T]) Move(ctx context.Context, persister Persister, oldIndex, newIndex int) (Result[T], error) {
	l.mu.Lock()
	if l.inFlight {
		l.mu.Unlock()
		return Result[T]{}, ErrReorderInFlight
	}

	res, err := ComputeReorder(l.items, oldIndex, newIndex)
	if err != nil {
		l.mu.Unlock()
		return Result[T]{}, err
	}
	if len(res.Updates) == 0 {
		l.mu.Unlock()
		return res, nil
	}

	snapshot := l.items
	l.items = res.Reordered
	l.inFlight = true
	l.mu.Unlock()

	persistErr := persister.PersistOrder(ctx, res.Updates)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.inFlight = false
	if persistErr != nil {
		l.items = snapshot
		return Result[T]{}, &ReorderPersistenceError{Updates: res.Updates, Err: persistErr}
	}

	return Result[T]{Reordered: clone(res.Reordered), Updates: res.Updates}, nil
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
