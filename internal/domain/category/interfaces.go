package category

import (
	"context"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/sector"

	"github.com/oklog/ulid/v2"
)

// SectorChecker é satisfeito por *sector.Service.
type SectorChecker interface {
	GetByID(ctx context.Context, sectorID ulid.ULID) (*sector.Sector, error)
}
