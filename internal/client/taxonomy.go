package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/contracts"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/category"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/ordering"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/sector"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/subcategory"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/taxonomy"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/pkg"

	"github.com/oklog/ulid/v2"
)

// siblingPageSize é o maior limite aceito pela listagem.
const siblingPageSize = pkg.MaxLimit

func (c *Client) ListSectors(ctx context.Context, opts ListOptions) (*pkg.PaginatedResponse[*sector.Sector], error) {
	var out pkg.PaginatedResponse[*sector.Sector]
	if err := c.do(ctx, http.MethodGet, "/api/sectors", opts.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListCategories(ctx context.Context, sectorID *ulid.ULID, opts ListOptions) (*pkg.PaginatedResponse[*category.ServiceCategory], error) {
	q := opts.values()
	if sectorID != nil {
		q.Set("sectorId", sectorID.String())
	}
	var out pkg.PaginatedResponse[*category.ServiceCategory]
	if err := c.do(ctx, http.MethodGet, "/api/categories", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubCategoryQuery filtra a listagem de subcategorias.
type SubCategoryQuery struct {
	CategoryID *ulid.ULID
	ParentID   *ulid.ULID
	Level      *int
}

func (c *Client) ListSubCategories(ctx context.Context, query SubCategoryQuery, opts ListOptions) (*pkg.PaginatedResponse[*subcategory.SubCategory], error) {
	q := opts.values()
	if query.CategoryID != nil {
		q.Set("categoryId", query.CategoryID.String())
	}
	if query.ParentID != nil {
		q.Set("parentId", query.ParentID.String())
	}
	if query.Level != nil {
		q.Set("level", strconv.Itoa(*query.Level))
	}
	var out pkg.PaginatedResponse[*subcategory.SubCategory]
	if err := c.do(ctx, http.MethodGet, "/api/subcategories", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// collectAll percorre as páginas na ordem de exibição (sort_order, name).
func collectAll[T any](ctx context.Context, fetch func(ctx context.Context, opts ListOptions) (*pkg.PaginatedResponse[T], error)) ([]T, error) {
	var all []T
	opts := ListOptions{Page: 1, Limit: siblingPageSize, SortBy: "order", SortDir: "asc"}
	for {
		page, err := fetch(ctx, opts)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Items...)
		if opts.Page >= page.Pagination.TotalPages || len(page.Items) == 0 {
			return all, nil
		}
		opts.Page++
	}
}

// SectorSiblings devolve todos os setores na ordem exibida no painel.
func (c *Client) SectorSiblings(ctx context.Context) ([]*sector.Sector, error) {
	return collectAll(ctx, c.ListSectors)
}

func (c *Client) CategorySiblings(ctx context.Context, sectorID ulid.ULID) ([]*category.ServiceCategory, error) {
	return collectAll(ctx, func(ctx context.Context, opts ListOptions) (*pkg.PaginatedResponse[*category.ServiceCategory], error) {
		return c.ListCategories(ctx, &sectorID, opts)
	})
}

// SubCategorySiblings lista os filhos diretos de parentID ou, sem pai, as subcategorias
// de nível 2 da categoria.
func (c *Client) SubCategorySiblings(ctx context.Context, categoryID ulid.ULID, parentID *ulid.ULID) ([]*subcategory.SubCategory, error) {
	query := SubCategoryQuery{CategoryID: &categoryID, ParentID: parentID}
	if parentID == nil {
		level := taxonomy.SubCategoryLevel
		query.Level = &level
	}
	return collectAll(ctx, func(ctx context.Context, opts ListOptions) (*pkg.PaginatedResponse[*subcategory.SubCategory], error) {
		return c.ListSubCategories(ctx, query, opts)
	})
}

func orderRequest(updates []ordering.Update) contracts.OrderRequest {
	items := make([]contracts.OrderItem, len(updates))
	for i, u := range updates {
		items[i] = contracts.OrderItem{ID: u.ID, Order: u.Order}
	}
	return contracts.OrderRequest{Items: items}
}

func (c *Client) ApplySectorOrder(ctx context.Context, updates []ordering.Update) error {
	return c.do(ctx, http.MethodPut, "/api/sectors/order", nil, orderRequest(updates), nil)
}

func (c *Client) ApplyCategoryOrder(ctx context.Context, updates []ordering.Update) error {
	return c.do(ctx, http.MethodPut, "/api/categories/order", nil, orderRequest(updates), nil)
}

func (c *Client) ApplySubCategoryOrder(ctx context.Context, updates []ordering.Update) error {
	return c.do(ctx, http.MethodPut, "/api/subcategories/order", nil, orderRequest(updates), nil)
}

// Persisters ligam um ordering.SiblingList local às rotas PUT .../order.
func (c *Client) SectorOrderPersister() ordering.Persister {
	return ordering.PersisterFunc(c.ApplySectorOrder)
}

func (c *Client) CategoryOrderPersister() ordering.Persister {
	return ordering.PersisterFunc(c.ApplyCategoryOrder)
}

func (c *Client) SubCategoryOrderPersister() ordering.Persister {
	return ordering.PersisterFunc(c.ApplySubCategoryOrder)
}

func (c *Client) SetCategoryDepth(ctx context.Context, categoryID ulid.ULID, level int) (*category.ServiceCategory, error) {
	var out category.ServiceCategory
	path := "/api/categories/" + url.PathEscape(categoryID.String()) + "/depth"
	if err := c.do(ctx, http.MethodPatch, path, nil, contracts.DepthRequest{Level: level}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReplaceCategoryMapping(ctx context.Context, categoryID ulid.ULID, mapping taxonomy.LevelMapping) (*category.ServiceCategory, error) {
	body := contracts.MappingRequest{LevelMapping: make(contracts.LevelMappingRequest, len(mapping))}
	for i, e := range mapping {
		body.LevelMapping[i] = contracts.LevelAttributeRequest{Level: e.Level, AttributeType: string(e.AttributeType)}
	}
	var out category.ServiceCategory
	path := "/api/categories/" + url.PathEscape(categoryID.String()) + "/mapping"
	if err := c.do(ctx, http.MethodPut, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AttributeTypes(ctx context.Context) (*contracts.AttributeTypesResponse, error) {
	var out contracts.AttributeTypesResponse
	if err := c.do(ctx, http.MethodGet, "/api/taxonomy/attribute-types", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
