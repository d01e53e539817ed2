package fx

import (
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/category"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/sector"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/subcategory"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/infrastructure"

	"go.uber.org/fx"
)

// DomainModule fornece os services da taxonomia
var DomainModule = fx.Module("domain",
	fx.Provide(
		newSectorService,
		newCategoryService,
		newSubCategoryService,
	),
)

func newSectorService(repo *infrastructure.SectorRepository) *sector.Service {
	return sector.NewService(repo)
}

func newCategoryService(
	repo *infrastructure.ServiceCategoryRepository,
	sectorSvc *sector.Service,
) *category.Service {
	return category.NewService(repo, sectorSvc)
}

func newSubCategoryService(
	repo *infrastructure.SubCategoryRepository,
	categorySvc *category.Service,
) *subcategory.Service {
	return subcategory.NewService(repo, categorySvc)
}
