package infrastructure

import (
	"context"
	"time"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/category"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/ordering"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/taxonomy"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/pkg"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	serviceCategoriesTable = "service_categories"
	levelMappingsTable     = "category_level_mappings"
)

type ServiceCategoryRepository struct {
	DB *gorm.DB
}

var _ category.Repository = (*ServiceCategoryRepository)(nil)

type serviceCategoryDB struct {
	Id          string    `gorm:"type:varchar(26);primaryKey"`
	SectorId    string    `gorm:"type:varchar(26);not null;index"`
	Name        string    `gorm:"size:120;not null"`
	Slug        string    `gorm:"size:140;not null;index"`
	Description string    `gorm:"type:text"`
	Icon        string    `gorm:"size:80"`
	Level       int       `gorm:"not null;default:3"`
	SortOrder   int       `gorm:"not null;default:0;index"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"type:timestamp"`
	UpdatedAt   time.Time `gorm:"type:timestamp"`
}

func (serviceCategoryDB) TableName() string { return serviceCategoriesTable }

type levelMappingDB struct {
	CategoryId    string `gorm:"type:varchar(26);primaryKey"`
	Level         int    `gorm:"primaryKey;autoIncrement:false"`
	AttributeType string `gorm:"size:20;not null"`
}

func (levelMappingDB) TableName() string { return levelMappingsTable }

func toDomainServiceCategory(row *serviceCategoryDB) (*category.ServiceCategory, error) {
	id, err := pkg.ParseULID(row.Id)
	if err != nil {
		return nil, err
	}
	sectorID, err := pkg.ParseULID(row.SectorId)
	if err != nil {
		return nil, err
	}
	return &category.ServiceCategory{
		Id:           id,
		SectorId:     sectorID,
		Name:         row.Name,
		Slug:         row.Slug,
		Description:  row.Description,
		Icon:         row.Icon,
		Level:        row.Level,
		LevelMapping: taxonomy.LevelMapping{},
		SortOrder:    row.SortOrder,
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

func toDBServiceCategory(c *category.ServiceCategory) *serviceCategoryDB {
	return &serviceCategoryDB{
		Id:          c.Id.String(),
		SectorId:    c.SectorId.String(),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Icon:        c.Icon,
		Level:       c.Level,
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toDBLevelMappings(categoryID string, mapping taxonomy.LevelMapping) []levelMappingDB {
	rows := make([]levelMappingDB, 0, len(mapping))
	for _, e := range mapping {
		rows = append(rows, levelMappingDB{
			CategoryId:    categoryID,
			Level:         e.Level,
			AttributeType: string(e.AttributeType),
		})
	}
	return rows
}

func (r *ServiceCategoryRepository) Create(ctx context.Context, c *category.ServiceCategory) error {
	row := toDBServiceCategory(c)
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		mappings := toDBLevelMappings(row.Id, c.LevelMapping)
		if len(mappings) == 0 {
			return nil
		}
		return tx.Create(&mappings).Error
	})
}

func (r *ServiceCategoryRepository) Update(ctx context.Context, c *category.ServiceCategory) error {
	row := toDBServiceCategory(c)
	return r.DB.WithContext(ctx).Table(serviceCategoriesTable).
		Where("id = ?", row.Id).
		Select("name", "slug", "description", "icon", "is_active", "updated_at").
		Updates(row).Error
}

func (r *ServiceCategoryRepository) Delete(ctx context.Context, categoryID ulid.ULID) error {
	id := categoryID.String()
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&subCategoryDB{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&levelMappingDB{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&serviceCategoryDB{}).Error
	})
}

func (r *ServiceCategoryRepository) GetByID(ctx context.Context, categoryID ulid.ULID) (*category.ServiceCategory, error) {
	row, err := query.New[serviceCategoryDB](r.DB, serviceCategoriesTable).
		Context(ctx).
		Where("id = ?", categoryID.String()).
		First()
	if err != nil {
		return nil, err
	}
	return r.withMappings(ctx, row)
}

func (r *ServiceCategoryRepository) GetByName(ctx context.Context, sectorID ulid.ULID, name string) (*category.ServiceCategory, error) {
	row, err := query.New[serviceCategoryDB](r.DB, serviceCategoriesTable).
		Context(ctx).
		Where("sector_id = ? AND LOWER(name) = LOWER(?)", sectorID.String(), name).
		First()
	if err != nil {
		return nil, err
	}
	return r.withMappings(ctx, row)
}

func (r *ServiceCategoryRepository) List(ctx context.Context, sectorID *ulid.ULID, params *pkg.ListParams) ([]*category.ServiceCategory, int64, error) {
	if params == nil {
		params = &pkg.ListParams{}
	}
	q := query.New[serviceCategoryDB](r.DB, serviceCategoriesTable).Context(ctx)
	if sectorID != nil {
		q.Where("sector_id = ?", sectorID.String())
	}
	q.Filter(params)

	items, total, err := query.Paginate(q, &params.Pagination, toDomainServiceCategory)
	if err != nil {
		return nil, 0, err
	}
	if err := r.attachMappings(ctx, items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *ServiceCategoryRepository) ListSiblings(ctx context.Context, sectorID ulid.ULID) ([]*category.ServiceCategory, error) {
	q := query.New[serviceCategoryDB](r.DB, serviceCategoriesTable).
		Context(ctx).
		Where("sector_id = ?", sectorID.String()).
		Order(siblingOrder)
	items, err := query.ExecuteAll(q, toDomainServiceCategory)
	if err != nil {
		return nil, err
	}
	if err := r.attachMappings(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ServiceCategoryRepository) UpdateOrders(ctx context.Context, updates []ordering.Update) error {
	return updateOrders(ctx, r.DB, serviceCategoriesTable, updates)
}

func (r *ServiceCategoryRepository) ReplaceMapping(ctx context.Context, categoryID ulid.ULID, depth int, mapping taxonomy.LevelMapping, retyped map[int]taxonomy.AttributeType) error {
	id := categoryID.String()
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// FOR UPDATE conflita com o FOR SHARE do SubCategoryRepository.Create, então
		// nenhuma subcategoria nova entra entre a checagem e a gravação.
		var locked serviceCategoryDB
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", id).
			Take(&locked).Error
		if err != nil {
			return err
		}

		var deepest int
		err = tx.Table(subCategoriesTable).
			Select("COALESCE(MAX(level), 0)").
			Where("category_id = ?", id).
			Scan(&deepest).Error
		if err != nil {
			return err
		}
		if deepest > depth {
			return &category.DepthInUseError{Depth: depth, Deepest: deepest}
		}

		err = tx.Table(serviceCategoriesTable).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"level":      depth,
				"updated_at": time.Now(),
			}).Error
		if err != nil {
			return err
		}

		if err := tx.Where("category_id = ?", id).Delete(&levelMappingDB{}).Error; err != nil {
			return err
		}
		if rows := toDBLevelMappings(id, mapping); len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		for level, attr := range retyped {
			err := tx.Table(subCategoriesTable).
				Where("category_id = ? AND level = ?", id, level).
				Update("attribute_type", string(attr)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ServiceCategoryRepository) withMappings(ctx context.Context, row *serviceCategoryDB) (*category.ServiceCategory, error) {
	c, err := toDomainServiceCategory(row)
	if err != nil {
		return nil, err
	}
	if err := r.attachMappings(ctx, []*category.ServiceCategory{c}); err != nil {
		return nil, err
	}
	return c, nil
}

// attachMappings carrega os mapeamentos de várias categorias com uma única consulta.
func (r *ServiceCategoryRepository) attachMappings(ctx context.Context, categories []*category.ServiceCategory) error {
	if len(categories) == 0 {
		return nil
	}
	ids := make([]string, len(categories))
	byID := make(map[string]*category.ServiceCategory, len(categories))
	for i, c := range categories {
		ids[i] = c.Id.String()
		byID[ids[i]] = c
	}

	var rows []levelMappingDB
	err := r.DB.WithContext(ctx).Table(levelMappingsTable).
		Where("category_id IN ?", ids).
		Order("category_id ASC, level ASC").
		Find(&rows).Error
	if err != nil {
		return err
	}

	for _, row := range rows {
		c := byID[row.CategoryId]
		c.LevelMapping = append(c.LevelMapping, taxonomy.LevelAttribute{
			Level:         row.Level,
			AttributeType: taxonomy.AttributeType(row.AttributeType),
		})
	}
	return nil
}
