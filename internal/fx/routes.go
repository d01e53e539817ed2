package fx

import (
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/category"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/sector"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/subcategory"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/infrastructure"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece o handler HTTP
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
	),
)

func newHandler(
	sectorSvc *sector.Service,
	categorySvc *category.Service,
	subCategorySvc *subcategory.Service,
	counter *infrastructure.TaxonomyCounter,
	health *infrastructure.DBHealth,
) *routes.Handler {
	return &routes.Handler{
		SectorService:      sectorSvc,
		CategoryService:    categorySvc,
		SubCategoryService: subCategorySvc,
		Counter:            counter,
		Health:             health,
	}
}
