package subcategory

import (
	"context"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/ordering"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, subCategory *SubCategory) error
	Update(ctx context.Context, subCategory *SubCategory) error
	DeleteMany(ctx context.Context, ids []ulid.ULID) error
	GetByID(ctx context.Context, subCategoryID ulid.ULID) (*SubCategory, error)
	GetByName(ctx context.Context, categoryID ulid.ULID, parentID *ulid.ULID, name string) (*SubCategory, error)
	List(ctx context.Context, filter ListFilter, params *pkg.ListParams) ([]*SubCategory, int64, error)
	// ListSiblings devolve o grupo (categoria, pai) ordenado por ordem e nome; parentID nil
	// é o primeiro nível da categoria.
	ListSiblings(ctx context.Context, categoryID ulid.ULID, parentID *ulid.ULID) ([]*SubCategory, error)
	ListByCategory(ctx context.Context, categoryID ulid.ULID) ([]*SubCategory, error)
	UpdateOrders(ctx context.Context, updates []ordering.Update) error
}
