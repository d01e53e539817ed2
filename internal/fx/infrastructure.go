package fx

import (
	"github.com/jupiter96/tradespeoplehub-sub000/config"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newSectorRepository,
		newServiceCategoryRepository,
		newSubCategoryRepository,
		newTaxonomyCounter,
		newDBHealth,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newSectorRepository(db *gorm.DB) *infrastructure.SectorRepository {
	return &infrastructure.SectorRepository{DB: db}
}

func newServiceCategoryRepository(db *gorm.DB) *infrastructure.ServiceCategoryRepository {
	return &infrastructure.ServiceCategoryRepository{DB: db}
}

func newSubCategoryRepository(db *gorm.DB) *infrastructure.SubCategoryRepository {
	return &infrastructure.SubCategoryRepository{DB: db}
}

func newTaxonomyCounter(db *gorm.DB) *infrastructure.TaxonomyCounter {
	return &infrastructure.TaxonomyCounter{DB: db}
}

func newDBHealth(db *gorm.DB) *infrastructure.DBHealth {
	return &infrastructure.DBHealth{DB: db}
}
