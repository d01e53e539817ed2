package sector_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/ordering"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/sector"
	appErrors "github.com/jupiter96/tradespeoplehub-sub000/internal/errors"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSectorRepository struct {
	sectors        map[ulid.ULID]*sector.Sector
	createFn       func(ctx context.Context, s *sector.Sector) error
	updateOrdersFn func(ctx context.Context, updates []ordering.Update) error
	deleted        []ulid.ULID
}

func newFakeRepo(sectors ...*sector.Sector) *fakeSectorRepository {
	repo := &fakeSectorRepository{sectors: make(map[ulid.ULID]*sector.Sector)}
	for _, s := range sectors {
		repo.sectors[s.Id] = s
	}
	return repo
}

func (f *fakeSectorRepository) Create(ctx context.Context, s *sector.Sector) error {
	if f.createFn != nil {
		return f.createFn(ctx, s)
	}
	f.sectors[s.Id] = s
	return nil
}

func (f *fakeSectorRepository) Update(ctx context.Context, s *sector.Sector) error {
	f.sectors[s.Id] = s
	return nil
}

func (f *fakeSectorRepository) Delete(ctx context.Context, id ulid.ULID) error {
	delete(f.sectors, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeSectorRepository) GetByID(ctx context.Context, id ulid.ULID) (*sector.Sector, error) {
	s, ok := f.sectors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *s
	return &clone, nil
}

func (f *fakeSectorRepository) GetByName(ctx context.Context, name string) (*sector.Sector, error) {
	for _, s := range f.sectors {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSectorRepository) List(ctx context.Context, params *pkg.ListParams) ([]*sector.Sector, int64, error) {
	all, _ := f.ListSiblings(ctx)
	return all, int64(len(all)), nil
}

func (f *fakeSectorRepository) ListSiblings(ctx context.Context) ([]*sector.Sector, error) {
	out := make([]*sector.Sector, 0, len(f.sectors))
	for _, s := range f.sectors {
		clone := *s
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (f *fakeSectorRepository) UpdateOrders(ctx context.Context, updates []ordering.Update) error {
	if f.updateOrdersFn != nil {
		return f.updateOrdersFn(ctx, updates)
	}
	for _, u := range updates {
		id := ulid.MustParse(u.ID)
		f.sectors[id].SortOrder = u.Order
	}
	return nil
}

func newSector(name string, order int) *sector.Sector {
	return &sector.Sector{Id: ulid.Make(), Name: name, SortOrder: order, IsActive: true}
}

func names(list []*sector.Sector) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.Name
	}
	return out
}

func requireAppCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, appErrors.FromError(err).Code)
}

func TestServiceCreate_AppendsAfterHighestSaneOrder(t *testing.T) {
	repo := newFakeRepo(newSector("Cleaning", 3), newSector("Moving", 7), newSector("Legacy", -1), newSector("Placeholder", 10000))
	svc := sector.NewService(repo)

	created := &sector.Sector{Name: "  Home   &   Garden "}
	require.NoError(t, svc.Create(context.Background(), created))

	assert.Equal(t, "Home & Garden", created.Name)
	assert.Equal(t, "home-garden", created.Slug)
	assert.Equal(t, 8, created.SortOrder)
	assert.True(t, created.IsActive)
	assert.NotEqual(t, ulid.ULID{}, created.Id)
}

func TestServiceCreate_FirstSectorGetsOrderOne(t *testing.T) {
	svc := sector.NewService(newFakeRepo())

	created := &sector.Sector{Name: "Beauty"}
	require.NoError(t, svc.Create(context.Background(), created))
	assert.Equal(t, 1, created.SortOrder)
}

func TestServiceCreate_Validations(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		createFn func(ctx context.Context, s *sector.Sector) error
		wantCode string
	}{
		{name: "empty name", input: "   ", wantCode: "VALIDATION_ERROR"},
		{name: "duplicate name", input: "cleaning", wantCode: "CONFLICT"},
		{
			name:  "unique violation from database",
			input: "Pets",
			createFn: func(ctx context.Context, s *sector.Sector) error {
				return errors.New(`ERROR: duplicate key value violates unique constraint "idx_sectors_name" (SQLSTATE 23505)`)
			},
			wantCode: "CONFLICT",
		},
		{
			name:  "database failure",
			input: "Pets",
			createFn: func(ctx context.Context, s *sector.Sector) error {
				return errors.New("connection refused")
			},
			wantCode: "DATABASE_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo(newSector("Cleaning", 1))
			repo.createFn = tt.createFn
			svc := sector.NewService(repo)

			err := svc.Create(context.Background(), &sector.Sector{Name: tt.input})
			requireAppCode(t, err, tt.wantCode)
		})
	}
}

func TestServiceMove_PersistsPermutation(t *testing.T) {
	a, b, c := newSector("A", 1), newSector("B", 2), newSector("C", 3)
	repo := newFakeRepo(a, b, c)
	svc := sector.NewService(repo)

	res, err := svc.Move(context.Background(), 0, 2)
	require.NoError(t, err)

	assert.Equal(t, []ordering.Update{
		{ID: b.Id.String(), Order: 1},
		{ID: c.Id.String(), Order: 2},
		{ID: a.Id.String(), Order: 3},
	}, res.Updates)
	assert.Equal(t, []string{"B", "C", "A"}, names(res.Reordered))

	stored, _ := repo.ListSiblings(context.Background())
	assert.Equal(t, []string{"B", "C", "A"}, names(stored))
}

func TestServiceMove_PersistenceFailureLeavesOrderUntouched(t *testing.T) {
	repo := newFakeRepo(newSector("A", 1), newSector("B", 2), newSector("C", 3))
	repo.updateOrdersFn = func(ctx context.Context, updates []ordering.Update) error {
		return errors.New("deadlock detected")
	}
	svc := sector.NewService(repo)

	_, err := svc.Move(context.Background(), 2, 0)
	requireAppCode(t, err, "REORDER_PERSISTENCE_ERROR")

	var persistErr *ordering.ReorderPersistenceError
	require.ErrorAs(t, err, &persistErr)

	stored, _ := repo.ListSiblings(context.Background())
	assert.Equal(t, []string{"A", "B", "C"}, names(stored))
}

func TestServiceMove_InvalidIndex(t *testing.T) {
	svc := sector.NewService(newFakeRepo(newSector("A", 1)))

	_, err := svc.Move(context.Background(), 0, 3)
	requireAppCode(t, err, "VALIDATION_ERROR")
}

func TestServiceApplyOrder(t *testing.T) {
	a, b := newSector("A", 1), newSector("B", 2)
	stranger := ulid.Make()

	tests := []struct {
		name     string
		updates  []ordering.Update
		wantCode string
		want     []string
	}{
		{
			name:    "swap",
			updates: []ordering.Update{{ID: a.Id.String(), Order: 2}, {ID: b.Id.String(), Order: 1}},
			want:    []string{"B", "A"},
		},
		{name: "empty", updates: nil, wantCode: "VALIDATION_ERROR"},
		{
			name:     "unknown id",
			updates:  []ordering.Update{{ID: stranger.String(), Order: 4}},
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "collision with untouched sibling",
			updates:  []ordering.Update{{ID: a.Id.String(), Order: 2}},
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "non positive order",
			updates:  []ordering.Update{{ID: a.Id.String(), Order: 0}},
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "repeated id",
			updates:  []ordering.Update{{ID: a.Id.String(), Order: 3}, {ID: a.Id.String(), Order: 4}},
			wantCode: "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aa, bb := *a, *b
			svc := sector.NewService(newFakeRepo(&aa, &bb))

			got, err := svc.ApplyOrder(context.Background(), tt.updates)
			if tt.wantCode != "" {
				requireAppCode(t, err, tt.wantCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestServiceUpdateAndStatus(t *testing.T) {
	existing := newSector("Cleaning", 1)
	other := newSector("Moving", 2)
	repo := newFakeRepo(existing, other)
	svc := sector.NewService(repo)
	ctx := context.Background()

	name := "Deep Cleaning"
	icon := "sparkles"
	updated, err := svc.Update(ctx, existing.Id, sector.UpdateInput{Name: &name, Icon: &icon})
	require.NoError(t, err)
	assert.Equal(t, "Deep Cleaning", updated.Name)
	assert.Equal(t, "sparkles", updated.Icon)
	assert.Equal(t, 1, updated.SortOrder)

	taken := "moving"
	_, err = svc.Update(ctx, existing.Id, sector.UpdateInput{Name: &taken})
	requireAppCode(t, err, "CONFLICT")

	deactivated, err := svc.SetActive(ctx, existing.Id, false)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)

	_, err = svc.SetActive(ctx, ulid.Make(), true)
	requireAppCode(t, err, "SECTOR_NOT_FOUND")
}

func TestServiceDelete(t *testing.T) {
	existing := newSector("Cleaning", 1)
	repo := newFakeRepo(existing)
	svc := sector.NewService(repo)

	require.NoError(t, svc.Delete(context.Background(), existing.Id))
	assert.Equal(t, []ulid.ULID{existing.Id}, repo.deleted)

	err := svc.Delete(context.Background(), existing.Id)
	requireAppCode(t, err, "SECTOR_NOT_FOUND")
}
