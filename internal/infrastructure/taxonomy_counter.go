package infrastructure

import (
	"context"

	"gorm.io/gorm"
)

// TaxonomyCounter alimenta o resumo exibido no topo do painel administrativo.
type TaxonomyCounter struct {
	DB *gorm.DB
}

type TaxonomyCounts struct {
	Sectors           int64         `json:"sectors"`
	ServiceCategories int64         `json:"serviceCategories"`
	SubCategories     int64         `json:"subCategories"`
	SubCategoryLevels map[int]int64 `json:"subCategoriesByLevel"`
}

func (r *TaxonomyCounter) count(ctx context.Context, table string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table(table).Count(&count).Error
	return count, err
}

func (r *TaxonomyCounter) CountSectors(ctx context.Context) (int64, error) {
	return r.count(ctx, sectorsTable)
}

func (r *TaxonomyCounter) CountServiceCategories(ctx context.Context) (int64, error) {
	return r.count(ctx, serviceCategoriesTable)
}

func (r *TaxonomyCounter) CountSubCategories(ctx context.Context) (int64, error) {
	return r.count(ctx, subCategoriesTable)
}

func (r *TaxonomyCounter) CountSubCategoriesByLevel(ctx context.Context) (map[int]int64, error) {
	var rows []struct {
		Level int
		Total int64
	}
	err := r.DB.WithContext(ctx).Table(subCategoriesTable).
		Select("level, COUNT(*) AS total").
		Group("level").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[int]int64, len(rows))
	for _, row := range rows {
		out[row.Level] = row.Total
	}
	return out, nil
}

func (r *TaxonomyCounter) Counts(ctx context.Context) (*TaxonomyCounts, error) {
	sectors, err := r.CountSectors(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := r.CountServiceCategories(ctx)
	if err != nil {
		return nil, err
	}
	subs, err := r.CountSubCategories(ctx)
	if err != nil {
		return nil, err
	}
	byLevel, err := r.CountSubCategoriesByLevel(ctx)
	if err != nil {
		return nil, err
	}
	return &TaxonomyCounts{
		Sectors:           sectors,
		ServiceCategories: categories,
		SubCategories:     subs,
		SubCategoryLevels: byLevel,
	}, nil
}
