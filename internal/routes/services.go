package routes

import (
	"context"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/category"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/ordering"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/sector"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/subcategory"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/taxonomy"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/infrastructure"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type SectorService interface {
	Create(ctx context.Context, s *sector.Sector) error
	Update(ctx context.Context, sectorID ulid.ULID, input sector.UpdateInput) (*sector.Sector, error)
	SetActive(ctx context.Context, sectorID ulid.ULID, active bool) (*sector.Sector, error)
	Delete(ctx context.Context, sectorID ulid.ULID) error
	GetByID(ctx context.Context, sectorID ulid.ULID) (*sector.Sector, error)
	List(ctx context.Context, params *pkg.ListParams) ([]*sector.Sector, int64, error)
	Move(ctx context.Context, oldIndex, newIndex int) (ordering.Result[*sector.Sector], error)
	ApplyOrder(ctx context.Context, updates []ordering.Update) ([]*sector.Sector, error)
}

type CategoryService interface {
	Create(ctx context.Context, c *category.ServiceCategory) error
	Update(ctx context.Context, categoryID ulid.ULID, input category.UpdateInput) (*category.ServiceCategory, error)
	SetActive(ctx context.Context, categoryID ulid.ULID, active bool) (*category.ServiceCategory, error)
	Delete(ctx context.Context, categoryID ulid.ULID) error
	GetByID(ctx context.Context, categoryID ulid.ULID) (*category.ServiceCategory, error)
	List(ctx context.Context, sectorID *ulid.ULID, params *pkg.ListParams) ([]*category.ServiceCategory, int64, error)
	SetDepth(ctx context.Context, categoryID ulid.ULID, depth int) (*category.ServiceCategory, error)
	ReplaceMapping(ctx context.Context, categoryID ulid.ULID, mapping taxonomy.LevelMapping) (*category.ServiceCategory, error)
	Move(ctx context.Context, sectorID ulid.ULID, oldIndex, newIndex int) (ordering.Result[*category.ServiceCategory], error)
	ApplyOrder(ctx context.Context, updates []ordering.Update) ([]*category.ServiceCategory, error)
}

type SubCategoryService interface {
	Create(ctx context.Context, s *subcategory.SubCategory) error
	Update(ctx context.Context, subCategoryID ulid.ULID, input subcategory.UpdateInput) (*subcategory.SubCategory, error)
	SetActive(ctx context.Context, subCategoryID ulid.ULID, active bool) (*subcategory.SubCategory, error)
	Delete(ctx context.Context, subCategoryID ulid.ULID) ([]ulid.ULID, error)
	GetByID(ctx context.Context, subCategoryID ulid.ULID) (*subcategory.SubCategory, error)
	List(ctx context.Context, filter subcategory.ListFilter, params *pkg.ListParams) ([]*subcategory.SubCategory, int64, error)
	Tree(ctx context.Context, categoryID ulid.ULID) (*category.ServiceCategory, []*subcategory.Node, error)
	Move(ctx context.Context, categoryID ulid.ULID, parentID *ulid.ULID, oldIndex, newIndex int) (ordering.Result[*subcategory.SubCategory], error)
	ApplyOrder(ctx context.Context, updates []ordering.Update) ([]*subcategory.SubCategory, error)
}

type TaxonomyCounter interface {
	Counts(ctx context.Context) (*infrastructure.TaxonomyCounts, error)
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}
