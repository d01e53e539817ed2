package infrastructure

import (
	"context"
	"time"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/ordering"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/sector"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/pkg"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

const sectorsTable = "sectors"

type SectorRepository struct {
	DB *gorm.DB
}

var _ sector.Repository = (*SectorRepository)(nil)

type sectorDB struct {
	Id          string    `gorm:"type:varchar(26);primaryKey"`
	Name        string    `gorm:"size:120;not null"`
	Slug        string    `gorm:"size:140;not null;index"`
	Description string    `gorm:"type:text"`
	Icon        string    `gorm:"size:80"`
	SortOrder   int       `gorm:"not null;default:0;index"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"type:timestamp"`
	UpdatedAt   time.Time `gorm:"type:timestamp"`
}

func (sectorDB) TableName() string { return sectorsTable }

func toDomainSector(row *sectorDB) (*sector.Sector, error) {
	id, err := pkg.ParseULID(row.Id)
	if err != nil {
		return nil, err
	}
	return &sector.Sector{
		Id:          id,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description,
		Icon:        row.Icon,
		SortOrder:   row.SortOrder,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

func toDBSector(s *sector.Sector) *sectorDB {
	return &sectorDB{
		Id:          s.Id.String(),
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		Icon:        s.Icon,
		SortOrder:   s.SortOrder,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (r *SectorRepository) Create(ctx context.Context, s *sector.Sector) error {
	return r.DB.WithContext(ctx).Create(toDBSector(s)).Error
}

func (r *SectorRepository) Update(ctx context.Context, s *sector.Sector) error {
	row := toDBSector(s)
	return r.DB.WithContext(ctx).Table(sectorsTable).
		Where("id = ?", row.Id).
		Select("name", "slug", "description", "icon", "is_active", "updated_at").
		Updates(row).Error
}

// Delete remove o setor, as categorias dele e tudo que está abaixo delas.
func (r *SectorRepository) Delete(ctx context.Context, sectorID ulid.ULID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categoryIDs := tx.Table(serviceCategoriesTable).Select("id").Where("sector_id = ?", sectorID.String())
		if err := tx.Where("category_id IN (?)", categoryIDs).Delete(&subCategoryDB{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id IN (?)", categoryIDs).Delete(&levelMappingDB{}).Error; err != nil {
			return err
		}
		if err := tx.Where("sector_id = ?", sectorID.String()).Delete(&serviceCategoryDB{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", sectorID.String()).Delete(&sectorDB{}).Error
	})
}

func (r *SectorRepository) GetByID(ctx context.Context, sectorID ulid.ULID) (*sector.Sector, error) {
	row, err := query.New[sectorDB](r.DB, sectorsTable).
		Context(ctx).
		Where("id = ?", sectorID.String()).
		First()
	if err != nil {
		return nil, err
	}
	return toDomainSector(row)
}

func (r *SectorRepository) GetByName(ctx context.Context, name string) (*sector.Sector, error) {
	row, err := query.New[sectorDB](r.DB, sectorsTable).
		Context(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First()
	if err != nil {
		return nil, err
	}
	return toDomainSector(row)
}

func (r *SectorRepository) List(ctx context.Context, params *pkg.ListParams) ([]*sector.Sector, int64, error) {
	if params == nil {
		params = &pkg.ListParams{}
	}
	q := query.New[sectorDB](r.DB, sectorsTable).Context(ctx).Filter(params)
	return query.Paginate(q, &params.Pagination, toDomainSector)
}

func (r *SectorRepository) ListSiblings(ctx context.Context) ([]*sector.Sector, error) {
	q := query.New[sectorDB](r.DB, sectorsTable).Context(ctx).Order(siblingOrder)
	return query.ExecuteAll(q, toDomainSector)
}

func (r *SectorRepository) UpdateOrders(ctx context.Context, updates []ordering.Update) error {
	return updateOrders(ctx, r.DB, sectorsTable, updates)
}
