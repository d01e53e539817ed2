package ordering_test

import (
	"math/rand"
	"sort"
	"strconv"
	"testing"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/ordering"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node struct {
	id    string
	order int
}

func (n node) OrderID() string { return n.id }
func (n node) OrderValue() int { return n.order }

func (n node) WithOrder(order int) node {
	n.order = order
	return n
}

func nodes(orders ...int) []node {
	out := make([]node, len(orders))
	for i, o := range orders {
		out[i] = node{id: string(rune('A' + i)), order: o}
	}
	return out
}

func ids(list []node) []string {
	out := make([]string, len(list))
	for i, n := range list {
		out[i] = n.id
	}
	return out
}

func orders(list []node) []int {
	out := make([]int, len(list))
	for i, n := range list {
		out[i] = n.order
	}
	return out
}

func TestComputeReorder_MoveFirstToLast(t *testing.T) {
	siblings := nodes(1, 2, 3)

	res, err := ordering.ComputeReorder(siblings, 0, 2)
	require.NoError(t, err)

	assert.Equal(t, []ordering.Update{
		{ID: "B", Order: 1},
		{ID: "C", Order: 2},
		{ID: "A", Order: 3},
	}, res.Updates)
	assert.Equal(t, []string{"B", "C", "A"}, ids(res.Reordered))
	assert.Equal(t, []int{1, 2, 3}, orders(res.Reordered))
	assert.Equal(t, []int{1, 2, 3}, orders(siblings), "input must not be mutated")
	assert.Equal(t, []string{"A", "B", "C"}, ids(siblings))
}

func TestComputeReorder_MoveLastToFirst(t *testing.T) {
	siblings := nodes(10, 20, 30, 40)

	res, err := ordering.ComputeReorder(siblings, 3, 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "D", "B", "C"}, ids(res.Reordered))
	assert.Equal(t, []int{10, 20, 30, 40}, orders(res.Reordered))
	assert.Equal(t, []ordering.Update{
		{ID: "D", Order: 20},
		{ID: "B", Order: 30},
		{ID: "C", Order: 40},
	}, res.Updates)
}

func TestComputeReorder_NonDenseOrdersArePermuted(t *testing.T) {
	siblings := nodes(2, 5, 9, 14)

	res, err := ordering.ComputeReorder(siblings, 1, 3)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "C", "D", "B"}, ids(res.Reordered))
	assert.Equal(t, []int{2, 5, 9, 14}, orders(res.Reordered))
	assert.Len(t, res.Updates, 3)
}

func TestComputeReorder_SameIndexIsNoop(t *testing.T) {
	siblings := nodes(1, 2, 3)

	res, err := ordering.ComputeReorder(siblings, 1, 1)
	require.NoError(t, err)

	assert.Empty(t, res.Updates)
	assert.Equal(t, siblings, res.Reordered)
}

func TestComputeReorder_OutOfRange(t *testing.T) {
	siblings := nodes(1, 2)

	tests := []struct {
		name     string
		old, new int
	}{
		{"negative old", -1, 0},
		{"negative new", 0, -1},
		{"old past end", 2, 0},
		{"new past end", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ordering.ComputeReorder(siblings, tt.old, tt.new)
			require.ErrorIs(t, err, ordering.ErrIndexOutOfRange)
		})
	}

	_, err := ordering.ComputeReorder([]node{}, 0, 0)
	require.ErrorIs(t, err, ordering.ErrIndexOutOfRange)
}

func TestComputeReorder_ResolvesDuplicateOrders(t *testing.T) {
	siblings := nodes(1, 1, 1, 4)

	res, err := ordering.ComputeReorder(siblings, 0, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "C", "A", "D"}, ids(res.Reordered))
	assert.Equal(t, []int{1, 2, 3, 4}, orders(res.Reordered))
	assert.Empty(t, ordering.DuplicateOrders(res.Reordered))
	assert.Equal(t, []ordering.Update{
		{ID: "C", Order: 2},
		{ID: "A", Order: 3},
	}, res.Updates)
}

func TestComputeReorder_CollisionCascadesPastWindow(t *testing.T) {
	siblings := nodes(1, 2, 2, 3)

	res, err := ordering.ComputeReorder(siblings, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "A", "C", "D"}, ids(res.Reordered))
	assert.Equal(t, []int{1, 2, 3, 4}, orders(res.Reordered))
}

func TestComputeReorder_NoDuplicatesRemain(t *testing.T) {
	tests := []struct {
		name       string
		orders     []int
		old, new   int
		wantIDs    []string
		wantOrders []int
		wantDiff   []ordering.Update
	}{
		{
			name:       "duplicate just before the window",
			orders:     []int{1, 1, 2},
			old:        1,
			new:        2,
			wantIDs:    []string{"A", "C", "B"},
			wantOrders: []int{1, 2, 3},
			wantDiff:   []ordering.Update{{ID: "C", Order: 2}, {ID: "B", Order: 3}},
		},
		{
			name:       "duplicate after the window",
			orders:     []int{1, 2, 3, 3},
			old:        0,
			new:        1,
			wantIDs:    []string{"B", "A", "C", "D"},
			wantOrders: []int{1, 2, 3, 4},
			wantDiff:   []ordering.Update{{ID: "B", Order: 1}, {ID: "A", Order: 2}, {ID: "D", Order: 4}},
		},
		{
			name:       "duplicate before a window that does not touch it",
			orders:     []int{5, 5, 6, 7},
			old:        3,
			new:        2,
			wantIDs:    []string{"A", "B", "D", "C"},
			wantOrders: []int{5, 6, 7, 8},
			wantDiff:   []ordering.Update{{ID: "B", Order: 6}, {ID: "D", Order: 7}, {ID: "C", Order: 8}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ordering.ComputeReorder(nodes(tt.orders...), tt.old, tt.new)
			require.NoError(t, err)

			assert.Equal(t, tt.wantIDs, ids(res.Reordered))
			assert.Equal(t, tt.wantOrders, orders(res.Reordered))
			assert.Empty(t, ordering.DuplicateOrders(res.Reordered))
			assert.Equal(t, tt.wantDiff, res.Updates)
		})
	}
}

func TestComputeReorder_DuplicateInputProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for iter := 0; iter < 500; iter++ {
		n := 2 + rng.Intn(10)
		siblings := make([]node, n)
		next := 1
		for i := range siblings {
			next += rng.Intn(3) - 1
			siblings[i] = node{id: strconv.Itoa(i), order: next}
		}
		oldIndex, newIndex := rng.Intn(n), rng.Intn(n)
		if oldIndex == newIndex {
			continue
		}

		res, err := ordering.ComputeReorder(siblings, oldIndex, newIndex)
		require.NoError(t, err)

		require.Equal(t, siblings[oldIndex].id, res.Reordered[newIndex].id)
		require.Empty(t, ordering.DuplicateOrders(res.Reordered), "orders %v", orders(siblings))
		for i := 1; i < n; i++ {
			require.Greater(t, res.Reordered[i].order, res.Reordered[i-1].order)
		}

		applied, missing := ordering.ApplyUpdates(siblings, res.Updates)
		require.Empty(t, missing)
		require.Empty(t, ordering.DuplicateOrders(applied))
	}
}

func TestComputeReorder_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 500; iter++ {
		n := 1 + rng.Intn(12)
		siblings := make([]node, n)
		next := 0
		for i := range siblings {
			next += 1 + rng.Intn(5)
			siblings[i] = node{id: strconv.Itoa(i), order: next}
		}
		oldIndex, newIndex := rng.Intn(n), rng.Intn(n)

		res, err := ordering.ComputeReorder(siblings, oldIndex, newIndex)
		require.NoError(t, err)

		// permutação dos valores originais
		before := orders(siblings)
		after := orders(res.Reordered)
		sort.Ints(after)
		require.Equal(t, before, after)

		// ordenar por order reproduz a ordem visual
		byOrder := append([]node(nil), res.Reordered...)
		sort.SliceStable(byOrder, func(i, j int) bool { return byOrder[i].order < byOrder[j].order })
		require.Equal(t, ids(res.Reordered), ids(byOrder))

		require.Equal(t, siblings[oldIndex].id, res.Reordered[newIndex].id)

		// o diff só toca a janela movida
		lo, hi := oldIndex, newIndex
		if lo > hi {
			lo, hi = hi, lo
		}
		if oldIndex == newIndex {
			require.Empty(t, res.Updates)
		} else {
			require.Len(t, res.Updates, hi-lo+1)
		}

		applied, missing := ordering.ApplyUpdates(siblings, res.Updates)
		require.Empty(t, missing)
		require.Empty(t, ordering.DuplicateOrders(applied))
	}
}

func TestNextOrder(t *testing.T) {
	tests := []struct {
		name   string
		orders []int
		want   int
	}{
		{"empty", nil, 1},
		{"negative excluded", []int{3, 7, -1}, 8},
		{"all non positive", []int{0, -4}, 1},
		{"placeholder excluded", []int{2, 10000, 99999}, 3},
		{"just below ceiling", []int{9999}, 10000},
		{"single", []int{1}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ordering.NextOrder(nodes(tt.orders...)))
		})
	}
}

func TestApplyUpdates_ReportsUnknownIDs(t *testing.T) {
	siblings := nodes(1, 2)

	out, missing := ordering.ApplyUpdates(siblings, []ordering.Update{
		{ID: "B", Order: 5},
		{ID: "Z", Order: 1},
	})

	assert.Equal(t, []int{1, 5}, orders(out))
	assert.Equal(t, []string{"Z"}, missing)
	assert.Equal(t, []int{1, 2}, orders(siblings))
}
