package ordering_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/ordering"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiblingList_MovePersistsDiff(t *testing.T) {
	list := ordering.NewSiblingList(nodes(1, 2, 3))

	var persisted []ordering.Update
	persister := ordering.PersisterFunc(func(ctx context.Context, updates []ordering.Update) error {
		persisted = updates
		return nil
	})

	res, err := list.Move(context.Background(), persister, 0, 2)
	require.NoError(t, err)

	assert.Equal(t, res.Updates, persisted)
	assert.Equal(t, []string{"B", "C", "A"}, ids(list.Items()))
	assert.Equal(t, []int{1, 2, 3}, orders(list.Items()))
	assert.Equal(t, 4, list.NextOrder())
}

func TestSiblingList_FailedPersistRevertsToSnapshot(t *testing.T) {
	original := nodes(1, 2, 3)
	list := ordering.NewSiblingList(original)
	cause := errors.New("502 bad gateway")

	_, err := list.Move(context.Background(), ordering.PersisterFunc(func(ctx context.Context, updates []ordering.Update) error {
		// a lista otimista fica visível enquanto a escrita está em andamento
		return cause
	}), 0, 2)

	var persistErr *ordering.ReorderPersistenceError
	require.ErrorAs(t, err, &persistErr)
	assert.ErrorIs(t, err, cause)
	assert.Len(t, persistErr.Updates, 3)

	assert.Equal(t, original, list.Items())
}

func TestSiblingList_OptimisticStateVisibleDuringPersist(t *testing.T) {
	list := ordering.NewSiblingList(nodes(1, 2, 3))

	var during []string
	_, err := list.Move(context.Background(), ordering.PersisterFunc(func(ctx context.Context, updates []ordering.Update) error {
		during = ids(list.Items())
		return errors.New("boom")
	}), 2, 0)
	require.Error(t, err)

	assert.Equal(t, []string{"C", "A", "B"}, during)
	assert.Equal(t, []string{"A", "B", "C"}, ids(list.Items()))
}

func TestSiblingList_RejectsSecondMoveWhileInFlight(t *testing.T) {
	list := ordering.NewSiblingList(nodes(1, 2, 3))

	var nestedErr error
	_, err := list.Move(context.Background(), ordering.PersisterFunc(func(ctx context.Context, updates []ordering.Update) error {
		_, nestedErr = list.Move(ctx, ordering.PersisterFunc(func(context.Context, []ordering.Update) error {
			t.Fatal("nested persister must not be called")
			return nil
		}), 0, 1)
		return nil
	}), 0, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, nestedErr, ordering.ErrReorderInFlight)
	assert.Equal(t, []string{"B", "C", "A"}, ids(list.Items()))

	// a flag é liberada quando a primeira escrita termina
	_, err = list.Move(context.Background(), ordering.PersisterFunc(func(context.Context, []ordering.Update) error { return nil }), 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, ids(list.Items()))
}

func TestSiblingList_NoopMoveSkipsPersister(t *testing.T) {
	list := ordering.NewSiblingList(nodes(1, 2))

	res, err := list.Move(context.Background(), ordering.PersisterFunc(func(context.Context, []ordering.Update) error {
		t.Fatal("persister must not be called for a no-op move")
		return nil
	}), 1, 1)
	require.NoError(t, err)
	assert.Empty(t, res.Updates)
}

func TestSiblingList_InvalidIndexLeavesListUntouched(t *testing.T) {
	list := ordering.NewSiblingList(nodes(1, 2))

	_, err := list.Move(context.Background(), ordering.PersisterFunc(func(context.Context, []ordering.Update) error { return nil }), 0, 5)
	require.ErrorIs(t, err, ordering.ErrIndexOutOfRange)
	assert.Equal(t, []string{"A", "B"}, ids(list.Items()))
}
