package subcategory

import (
	"context"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/category"

	"github.com/oklog/ulid/v2"
)

// CategoryChecker é satisfeito por *category.Service.
type CategoryChecker interface {
	GetByID(ctx context.Context, categoryID ulid.ULID) (*category.ServiceCategory, error)
}
