package category

import (
	"fmt"
	"time"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/taxonomy"

	"github.com/oklog/ulid/v2"
)

const DefaultDepth = taxonomy.MinDepth

// DepthInUseError é devolvido pelo repositório quando, dentro da transação de
// ReplaceMapping, ainda existe subcategoria abaixo da nova profundidade.
type DepthInUseError struct {
	Depth   int
	Deepest int
}

func (e *DepthInUseError) Error() string {
	return fmt.Sprintf("category: subcategory at level %d below depth %d", e.Deepest, e.Depth)
}

// ServiceCategory é o nó logo abaixo do setor. Level é a profundidade declarada (3..7) e
// LevelMapping diz qual tipo de atributo cada nível 3..Level usa.
type ServiceCategory struct {
	Id           ulid.ULID             `json:"id"`
	SectorId     ulid.ULID             `json:"sectorId"`
	Name         string                `json:"name"`
	Slug         string                `json:"slug"`
	Description  string                `json:"description"`
	Icon         string                `json:"icon"`
	Level        int                   `json:"level"`
	LevelMapping taxonomy.LevelMapping `json:"categoryLevelMapping"`
	SortOrder    int                   `json:"order"`
	IsActive     bool                  `json:"isActive"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

func (c *ServiceCategory) OrderID() string {
	return c.Id.String()
}

func (c *ServiceCategory) OrderValue() int {
	return c.SortOrder
}

func (c *ServiceCategory) WithOrder(order int) *ServiceCategory {
	clone := *c
	clone.SortOrder = order
	return &clone
}

type UpdateInput struct {
	Name        *string
	Slug        *string
	Description *string
	Icon        *string
}
