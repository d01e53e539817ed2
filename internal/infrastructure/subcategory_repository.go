package infrastructure

import (
	"context"
	"time"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/ordering"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/subcategory"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/taxonomy"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/pkg"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const subCategoriesTable = "subcategories"

type SubCategoryRepository struct {
	DB *gorm.DB
}

var _ subcategory.Repository = (*SubCategoryRepository)(nil)

type subCategoryDB struct {
	Id            string    `gorm:"type:varchar(26);primaryKey"`
	CategoryId    string    `gorm:"type:varchar(26);not null;index"`
	ParentId      *string   `gorm:"type:varchar(26);index"`
	Name          string    `gorm:"size:120;not null"`
	Slug          string    `gorm:"size:140;not null;index"`
	Description   string    `gorm:"type:text"`
	Icon          string    `gorm:"size:80"`
	Level         int       `gorm:"not null;index"`
	AttributeType *string   `gorm:"size:20"`
	SortOrder     int       `gorm:"not null;default:0;index"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time `gorm:"type:timestamp"`
	UpdatedAt     time.Time `gorm:"type:timestamp"`
}

func (subCategoryDB) TableName() string { return subCategoriesTable }

func toDomainSubCategory(row *subCategoryDB) (*subcategory.SubCategory, error) {
	id, err := pkg.ParseULID(row.Id)
	if err != nil {
		return nil, err
	}
	categoryID, err := pkg.ParseULID(row.CategoryId)
	if err != nil {
		return nil, err
	}
	parentID, err := pkg.MustParseULIDPtr(row.ParentId)
	if err != nil {
		return nil, err
	}

	var attr *taxonomy.AttributeType
	if row.AttributeType != nil && *row.AttributeType != "" {
		a := taxonomy.AttributeType(*row.AttributeType)
		attr = &a
	}

	return &subcategory.SubCategory{
		Id:            id,
		CategoryId:    categoryID,
		ParentId:      parentID,
		Name:          row.Name,
		Slug:          row.Slug,
		Description:   row.Description,
		Icon:          row.Icon,
		Level:         row.Level,
		AttributeType: attr,
		SortOrder:     row.SortOrder,
		IsActive:      row.IsActive,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

func toDBSubCategory(s *subcategory.SubCategory) *subCategoryDB {
	var attr *string
	if s.AttributeType != nil {
		a := string(*s.AttributeType)
		attr = &a
	}
	return &subCategoryDB{
		Id:            s.Id.String(),
		CategoryId:    s.CategoryId.String(),
		ParentId:      pkg.ULIDPtrToString(s.ParentId),
		Name:          s.Name,
		Slug:          s.Slug,
		Description:   s.Description,
		Icon:          s.Icon,
		Level:         s.Level,
		AttributeType: attr,
		SortOrder:     s.SortOrder,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// Create segura a categoria com FOR SHARE para não correr junto com uma redução de
// profundidade (ServiceCategoryRepository.ReplaceMapping).
func (r *SubCategoryRepository) Create(ctx context.Context, s *subcategory.SubCategory) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parent serviceCategoryDB
		err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
			Select("id").
			Where("id = ?", s.CategoryId.String()).
			Take(&parent).Error
		if err != nil {
			return err
		}
		return tx.Create(toDBSubCategory(s)).Error
	})
}

func (r *SubCategoryRepository) Update(ctx context.Context, s *subcategory.SubCategory) error {
	row := toDBSubCategory(s)
	return r.DB.WithContext(ctx).Table(subCategoriesTable).
		Where("id = ?", row.Id).
		Select("name", "slug", "description", "icon", "is_active", "updated_at").
		Updates(row).Error
}

func (r *SubCategoryRepository) DeleteMany(ctx context.Context, ids []ulid.ULID) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("id IN ?", keys).Delete(&subCategoryDB{}).Error
	})
}

func (r *SubCategoryRepository) GetByID(ctx context.Context, subCategoryID ulid.ULID) (*subcategory.SubCategory, error) {
	row, err := query.New[subCategoryDB](r.DB, subCategoriesTable).
		Context(ctx).
		Where("id = ?", subCategoryID.String()).
		First()
	if err != nil {
		return nil, err
	}
	return toDomainSubCategory(row)
}

func (r *SubCategoryRepository) GetByName(ctx context.Context, categoryID ulid.ULID, parentID *ulid.ULID, name string) (*subcategory.SubCategory, error) {
	row, err := query.New[subCategoryDB](r.DB, subCategoriesTable).
		Context(ctx).
		Where("category_id = ?", categoryID.String()).
		WhereParent("parent_id", pkg.ULIDPtrToString(parentID)).
		Where("LOWER(name) = LOWER(?)", name).
		First()
	if err != nil {
		return nil, err
	}
	return toDomainSubCategory(row)
}

func (r *SubCategoryRepository) List(ctx context.Context, filter subcategory.ListFilter, params *pkg.ListParams) ([]*subcategory.SubCategory, int64, error) {
	if params == nil {
		params = &pkg.ListParams{}
	}
	q := query.New[subCategoryDB](r.DB, subCategoriesTable).Context(ctx)
	if filter.CategoryId != nil {
		q.Where("category_id = ?", filter.CategoryId.String())
	}
	if filter.ParentId != nil {
		q.Where("parent_id = ?", filter.ParentId.String())
	}
	if filter.Level != nil {
		q.Where("level = ?", *filter.Level)
	}
	q.Filter(params)
	return query.Paginate(q, &params.Pagination, toDomainSubCategory)
}

func (r *SubCategoryRepository) ListSiblings(ctx context.Context, categoryID ulid.ULID, parentID *ulid.ULID) ([]*subcategory.SubCategory, error) {
	q := query.New[subCategoryDB](r.DB, subCategoriesTable).
		Context(ctx).
		Where("category_id = ?", categoryID.String()).
		WhereParent("parent_id", pkg.ULIDPtrToString(parentID)).
		Order(siblingOrder)
	return query.ExecuteAll(q, toDomainSubCategory)
}

func (r *SubCategoryRepository) ListByCategory(ctx context.Context, categoryID ulid.ULID) ([]*subcategory.SubCategory, error) {
	q := query.New[subCategoryDB](r.DB, subCategoriesTable).
		Context(ctx).
		Where("category_id = ?", categoryID.String()).
		Order("level ASC, " + siblingOrder)
	return query.ExecuteAll(q, toDomainSubCategory)
}

func (r *SubCategoryRepository) UpdateOrders(ctx context.Context, updates []ordering.Update) error {
	return updateOrders(ctx, r.DB, subCategoriesTable, updates)
}
