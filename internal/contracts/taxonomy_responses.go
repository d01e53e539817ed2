package contracts

import (
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/category"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/ordering"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/subcategory"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/taxonomy"
)

// MoveResponse devolve a lista já reordenada e o diff gravado.
type MoveResponse[T any] struct {
	Items   []T               `json:"items" yaml:"items"`
	Updates []ordering.Update `json:"updates" yaml:"updates"`
}

func NewMoveResponse[T any](res ordering.Result[T]) MoveResponse[T] {
	updates := res.Updates
	if updates == nil {
		updates = []ordering.Update{}
	}
	return MoveResponse[T]{Items: res.Reordered, Updates: updates}
}

type OrderResponse[T any] struct {
	Items []T `json:"items" yaml:"items"`
}

type CategoryTreeResponse struct {
	Category *category.ServiceCategory `json:"category"`
	Children []*subcategory.Node       `json:"children"`
}

type DeleteResponse struct {
	Deleted []string `json:"deleted"`
}

type AttributeTypesResponse struct {
	AttributeTypes   []taxonomy.AttributeType `json:"attributeTypes"`
	SectorLevel      int                      `json:"sectorLevel"`
	SubCategoryLevel int                      `json:"subCategoryLevel"`
	MinDepth         int                      `json:"minDepth"`
	MaxDepth         int                      `json:"maxDepth"`
	DefaultDepth     int                      `json:"defaultDepth"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
