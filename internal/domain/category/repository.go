package category

import (
	"context"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/ordering"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/taxonomy"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, category *ServiceCategory) error
	Update(ctx context.Context, category *ServiceCategory) error
	// Delete remove a categoria, o mapeamento e todas as subcategorias.
	Delete(ctx context.Context, categoryID ulid.ULID) error
	GetByID(ctx context.Context, categoryID ulid.ULID) (*ServiceCategory, error)
	GetByName(ctx context.Context, sectorID ulid.ULID, name string) (*ServiceCategory, error)
	List(ctx context.Context, sectorID *ulid.ULID, params *pkg.ListParams) ([]*ServiceCategory, int64, error)
	ListSiblings(ctx context.Context, sectorID ulid.ULID) ([]*ServiceCategory, error)
	UpdateOrders(ctx context.Context, updates []ordering.Update) error
	// ReplaceMapping grava profundidade e mapeamento e reescreve o attributeType das
	// subcategorias dos níveis em retyped, tudo na mesma transação. Devolve
	// *DepthInUseError se alguma subcategoria estiver abaixo de depth.
	ReplaceMapping(ctx context.Context, categoryID ulid.ULID, depth int, mapping taxonomy.LevelMapping, retyped map[int]taxonomy.AttributeType) error
}
