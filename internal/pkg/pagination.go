package pkg

import (
	"strings"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type PaginationParams struct {
	Page  int
	Limit int
}

func (p *PaginationParams) Offset() int {
	if p == nil {
		return 0
	}
	if p.Page < 1 {
		p.Page = 1
	}
	return (p.Page - 1) * p.Limit
}

func (p *PaginationParams) Normalize() {
	if p == nil {
		return
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

func NormalizePagination(p *PaginationParams) *PaginationParams {
	if p == nil {
		return &PaginationParams{Page: 1, Limit: DefaultLimit}
	}
	p.Normalize()
	return p
}

// ListParams reúne paginação, busca, filtro de status e ordenação das telas de listagem.
type ListParams struct {
	Pagination PaginationParams
	Search     string
	IsActive   *bool
	SortBy     string
	SortDir    string
}

var sortColumns = map[string]string{
	"order":     "sort_order",
	"name":      "name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// OrderClause devolve uma cláusula ORDER BY segura; colunas desconhecidas caem na ordem padrão.
func (l *ListParams) OrderClause() string {
	column, ok := sortColumns[l.SortBy]
	if !ok {
		column = "sort_order"
	}
	dir := "ASC"
	if strings.EqualFold(l.SortDir, "desc") {
		dir = "DESC"
	}
	if column == "name" {
		return "name " + dir
	}
	return column + " " + dir + ", name ASC"
}

func (l *ListParams) SearchPattern() string {
	s := strings.TrimSpace(l.Search)
	if s == "" {
		return ""
	}
	s = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
	return "%" + strings.ToLower(s) + "%"
}

type PageInfo struct {
	Page       int   `json:"page" yaml:"page"`
	Limit      int   `json:"limit" yaml:"limit"`
	Total      int64 `json:"total" yaml:"total"`
	TotalPages int   `json:"totalPages" yaml:"totalPages"`
}

// PaginatedResponse segue o formato { items, pagination } consumido pelo painel.
type PaginatedResponse[T any] struct {
	Items      []T      `json:"items" yaml:"items"`
	Pagination PageInfo `json:"pagination" yaml:"pagination"`
}

func NewPaginatedResponse[T any](items []T, page, limit int, total int64) *PaginatedResponse[T] {
	if limit < 1 {
		limit = DefaultLimit
	}
	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}
	if totalPages == 0 {
		totalPages = 1
	}
	if items == nil {
		items = []T{}
	}
	return &PaginatedResponse[T]{
		Items: items,
		Pagination: PageInfo{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}
