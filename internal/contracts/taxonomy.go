package contracts

import (
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/ordering"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/taxonomy"
)

type SectorCreateRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Slug        string `json:"slug" binding:"omitempty,max=140"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Icon        string `json:"icon" binding:"omitempty,max=80"`
}

// NodeUpdateRequest é o PATCH comum a setores, categorias e subcategorias.
type NodeUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=120"`
	Slug        *string `json:"slug" binding:"omitempty,max=140"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Icon        *string `json:"icon" binding:"omitempty,max=80"`
}

type StatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

type MoveRequest struct {
	OldIndex *int `json:"oldIndex" binding:"required,min=0"`
	NewIndex *int `json:"newIndex" binding:"required,min=0"`
}

type CategoryMoveRequest struct {
	SectorID string `json:"sectorId" binding:"required,ulid"`
	MoveRequest
}

type SubCategoryMoveRequest struct {
	CategoryID string  `json:"categoryId" binding:"required,ulid"`
	ParentID   *string `json:"parentId" binding:"omitempty,ulid"`
	MoveRequest
}

type OrderItem struct {
	ID    string `json:"id" binding:"required,ulid"`
	Order int    `json:"order" binding:"required,min=1,max=9999"`
}

// OrderRequest é o diff {id, order} produzido pelo arrastar e soltar do painel.
type OrderRequest struct {
	Items []OrderItem `json:"items" binding:"required,min=1,dive"`
}

func (r OrderRequest) Updates() []ordering.Update {
	updates := make([]ordering.Update, len(r.Items))
	for i, item := range r.Items {
		updates[i] = ordering.Update{ID: item.ID, Order: item.Order}
	}
	return updates
}

type LevelAttributeRequest struct {
	Level         int    `json:"level" binding:"required,min=3,max=7"`
	AttributeType string `json:"attributeType" binding:"required,attributetype"`
}

type LevelMappingRequest []LevelAttributeRequest

func (r LevelMappingRequest) Mapping() taxonomy.LevelMapping {
	if len(r) == 0 {
		return nil
	}
	mapping := make(taxonomy.LevelMapping, len(r))
	for i, e := range r {
		mapping[i] = taxonomy.LevelAttribute{Level: e.Level, AttributeType: taxonomy.AttributeType(e.AttributeType)}
	}
	return mapping
}

type CategoryCreateRequest struct {
	SectorID     string              `json:"sectorId" binding:"required,ulid"`
	Name         string              `json:"name" binding:"required,max=120"`
	Slug         string              `json:"slug" binding:"omitempty,max=140"`
	Description  string              `json:"description" binding:"omitempty,max=2000"`
	Icon         string              `json:"icon" binding:"omitempty,max=80"`
	Level        int                 `json:"level" binding:"omitempty,min=3,max=7"`
	LevelMapping LevelMappingRequest `json:"categoryLevelMapping" binding:"omitempty,dive"`
}

type DepthRequest struct {
	Level int `json:"level" binding:"required,min=3,max=7"`
}

type MappingRequest struct {
	LevelMapping LevelMappingRequest `json:"categoryLevelMapping" binding:"required,min=1,dive"`
}

type SubCategoryCreateRequest struct {
	CategoryID  string  `json:"categoryId" binding:"required,ulid"`
	ParentID    *string `json:"parentId" binding:"omitempty,ulid"`
	Name        string  `json:"name" binding:"required,max=120"`
	Slug        string  `json:"slug" binding:"omitempty,max=140"`
	Description string  `json:"description" binding:"omitempty,max=2000"`
	Icon        string  `json:"icon" binding:"omitempty,max=80"`
}
