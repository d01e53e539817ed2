package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedResponse(t *testing.T) {
	resp := NewPaginatedResponse([]string{"a", "b"}, 2, 10, 21)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.Equal(t, int64(21), resp.Pagination.Total)

	empty := NewPaginatedResponse[string](nil, 1, 10, 0)
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 1, empty.Pagination.TotalPages)
}

func TestPaginationNormalize(t *testing.T) {
	p := &PaginationParams{Page: 0, Limit: 500}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, MaxLimit, p.Limit)
	assert.Equal(t, 0, p.Offset())

	p = NormalizePagination(nil)
	assert.Equal(t, DefaultLimit, p.Limit)
}

func TestListParams_OrderClause(t *testing.T) {
	tests := []struct {
		sortBy, sortDir string
		want            string
	}{
		{"", "", "sort_order ASC, name ASC"},
		{"order", "desc", "sort_order DESC, name ASC"},
		{"name", "DESC", "name DESC"},
		{"createdAt", "asc", "created_at ASC, name ASC"},
		{"id; DROP TABLE sectors", "", "sort_order ASC, name ASC"},
	}

	for _, tt := range tests {
		l := ListParams{SortBy: tt.sortBy, SortDir: tt.sortDir}
		assert.Equal(t, tt.want, l.OrderClause())
	}
}

func TestListParams_SearchPattern(t *testing.T) {
	assert.Equal(t, "", (&ListParams{Search: "   "}).SearchPattern())
	assert.Equal(t, "%home%", (&ListParams{Search: " Home "}).SearchPattern())
	assert.Equal(t, `%50\%\_off%`, (&ListParams{Search: "50%_off"}).SearchPattern())
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "home-garden", Slugify("Home & Garden"))
	assert.Equal(t, "manutencao-eletrica", Slugify("  Manutenção Elétrica "))
	assert.Equal(t, "", Slugify("!!!"))
}
