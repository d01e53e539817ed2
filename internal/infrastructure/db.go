package infrastructure

import (
	"context"

	"github.com/jupiter96/tradespeoplehub-sub000/config"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func NewDb(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{}
	if cfg.App.IsProduction() {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), gormCfg)
	if err != nil {
		logger.Error().
			Err(err).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("Falha ao conectar ao banco de dados")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("Falha ao obter instância do banco de dados")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	logger.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.DBName).
		Msg("Conexão com banco de dados estabelecida com sucesso")

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func runMigrations(db *gorm.DB) error {
	logger.Info().Msg("Executando migrations...")

	entities := []interface{}{
		&sectorDB{},
		&serviceCategoryDB{},
		&levelMappingDB{},
		&subCategoryDB{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			logger.Error().
				Err(err).
				Str("entity", getEntityName(entity)).
				Msg("Erro ao migrar entidade")
			return err
		}
	}

	if err := ensureNameIndexes(db); err != nil {
		logger.Warn().Err(err).Msg("Aviso ao criar índices de nomes")
	}

	logger.Info().Msg("Migrations executadas com sucesso!")
	return nil
}

// nameIndexStatements criam a unicidade de nome sem diferenciar maiúsculas, igual ao
// LOWER(name) usado pelos GetByName. parent_id é anulável, então o primeiro nível de
// subcategorias precisa de um índice parcial próprio.
var nameIndexStatements = []string{
	`DROP INDEX IF EXISTS idx_sectors_name`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_sectors_lower_name
		ON sectors (LOWER(name))`,
	`DROP INDEX IF EXISTS idx_service_categories_sector_name`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_service_categories_sector_lower_name
		ON service_categories (sector_id, LOWER(name))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_subcategories_parent_name
		ON subcategories (category_id, parent_id, LOWER(name)) WHERE parent_id IS NOT NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_subcategories_top_name
		ON subcategories (category_id, LOWER(name)) WHERE parent_id IS NULL`,
}

func ensureNameIndexes(db *gorm.DB) error {
	for _, q := range nameIndexStatements {
		if err := db.Exec(q).Error; err != nil {
			return err
		}
	}
	return nil
}

func getEntityName(entity interface{}) string {
	switch entity.(type) {
	case *sectorDB:
		return "Sector"
	case *serviceCategoryDB:
		return "ServiceCategory"
	case *levelMappingDB:
		return "CategoryLevelMapping"
	case *subCategoryDB:
		return "SubCategory"
	default:
		return "Unknown"
	}
}

// DBHealth responde ao /health com um ping no pool do gorm.
type DBHealth struct {
	DB *gorm.DB
}

func (h *DBHealth) Ping(ctx context.Context) error {
	sqlDB, err := h.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
