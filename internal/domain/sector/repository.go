package sector

import (
	"context"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/ordering"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, sector *Sector) error
	Update(ctx context.Context, sector *Sector) error
	// Delete remove o setor junto com suas categorias e subcategorias.
	Delete(ctx context.Context, sectorID ulid.ULID) error
	GetByID(ctx context.Context, sectorID ulid.ULID) (*Sector, error)
	GetByName(ctx context.Context, name string) (*Sector, error)
	List(ctx context.Context, params *pkg.ListParams) ([]*Sector, int64, error)
	ListSiblings(ctx context.Context) ([]*Sector, error)
	UpdateOrders(ctx context.Context, updates []ordering.Update) error
}
