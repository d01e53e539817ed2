package subcategory

import (
	"time"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/taxonomy"

	"github.com/oklog/ulid/v2"
)

// SubCategory é um nó de nível 2..7 dentro de uma categoria de serviço. Os nós de nível 3
// em diante carregam o tipo de atributo definido pelo mapeamento da categoria.
type SubCategory struct {
	Id            ulid.ULID               `json:"id"`
	CategoryId    ulid.ULID               `json:"categoryId"`
	ParentId      *ulid.ULID              `json:"parentId"`
	Name          string                  `json:"name"`
	Slug          string                  `json:"slug"`
	Description   string                  `json:"description"`
	Icon          string                  `json:"icon"`
	Level         int                     `json:"level"`
	AttributeType *taxonomy.AttributeType `json:"attributeType"`
	SortOrder     int                     `json:"order"`
	IsActive      bool                    `json:"isActive"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
}

func (s *SubCategory) OrderID() string {
	return s.Id.String()
}

func (s *SubCategory) OrderValue() int {
	return s.SortOrder
}

func (s *SubCategory) WithOrder(order int) *SubCategory {
	clone := *s
	clone.SortOrder = order
	return &clone
}

func (s *SubCategory) Placement() (taxonomy.Placement, error) {
	return taxonomy.NewPlacement(s.Level, s.AttributeType)
}

func (s *SubCategory) applyPlacement(p taxonomy.Placement) {
	s.Level = p.Level()
	s.AttributeType = taxonomy.AttributePtr(p)
}

type UpdateInput struct {
	Name        *string
	Slug        *string
	Description *string
	Icon        *string
}

// ListFilter restringe a listagem paginada. ParentId só é aplicado quando informado.
type ListFilter struct {
	CategoryId *ulid.ULID
	ParentId   *ulid.ULID
	Level      *int
}
