package query

import (
	"github.com/jupiter96/tradespeoplehub-sub000/internal/pkg"
)

// Paginate conta o total com os filtros aplicados e carrega apenas a página pedida.
func Paginate[DBModel any, Domain any](
	q *Query[DBModel],
	pagination *pkg.PaginationParams,
	converter func(*DBModel) (*Domain, error),
) ([]*Domain, int64, error) {
	pagination = pkg.NormalizePagination(pagination)

	total, err := q.Count()
	if err != nil {
		return nil, 0, err
	}

	db := q.DB()
	if q.OrderBy() != "" {
		db = db.Order(q.OrderBy())
	}

	var rows []DBModel
	err = db.Offset(pagination.Offset()).Limit(pagination.Limit).Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	items, err := convertAll(rows, converter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
