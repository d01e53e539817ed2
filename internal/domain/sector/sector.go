package sector

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Sector é o nível 1 da taxonomia (ex.: "Casa e Jardim").
type Sector struct {
	Id          ulid.ULID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	SortOrder   int       `json:"order"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (s *Sector) OrderID() string {
	return s.Id.String()
}

func (s *Sector) OrderValue() int {
	return s.SortOrder
}

func (s *Sector) WithOrder(order int) *Sector {
	clone := *s
	clone.SortOrder = order
	return &clone
}

type UpdateInput struct {
	Name        *string
	Slug        *string
	Description *string
	Icon        *string
}
