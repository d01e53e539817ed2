package routes

import (
	"net/http"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/contracts"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/category"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateCategory(c *gin.Context) {
	var body contracts.CategoryCreateRequest
	if !h.bindJSON(c, &body) {
		return
	}

	sectorID, err := pkg.ParseULID(body.SectorID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	cat := category.ServiceCategory{
		SectorId:     sectorID,
		Name:         body.Name,
		Slug:         body.Slug,
		Description:  body.Description,
		Icon:         body.Icon,
		Level:        body.Level,
		LevelMapping: body.LevelMapping.Mapping(),
	}

	if err := h.CategoryService.Create(c.Request.Context(), &cat); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cat)
}

func (h *Handler) ListCategories(c *gin.Context) {
	params, err := h.parseListParams(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	sectorID, err := h.parseOptionalID(c, "sectorId")
	if err != nil {
		h.respondError(c, err)
		return
	}

	categories, total, err := h.CategoryService.List(c.Request.Context(), sectorID, params)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(categories, params.Pagination.Page, params.Pagination.Limit, total))
}

func (h *Handler) GetCategory(c *gin.Context) {
	categoryID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	cat, err := h.CategoryService.GetByID(c.Request.Context(), categoryID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cat)
}

func (h *Handler) GetCategoryTree(c *gin.Context) {
	categoryID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	cat, children, err := h.SubCategoryService.Tree(c.Request.Context(), categoryID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CategoryTreeResponse{Category: cat, Children: children})
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	categoryID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.NodeUpdateRequest
	if !h.bindJSON(c, &body) {
		return
	}

	cat, err := h.CategoryService.Update(c.Request.Context(), categoryID, category.UpdateInput(body))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cat)
}

func (h *Handler) SetCategoryStatus(c *gin.Context) {
	categoryID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.StatusRequest
	if !h.bindJSON(c, &body) {
		return
	}

	cat, err := h.CategoryService.SetActive(c.Request.Context(), categoryID, *body.IsActive)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cat)
}

func (h *Handler) SetCategoryDepth(c *gin.Context) {
	categoryID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.DepthRequest
	if !h.bindJSON(c, &body) {
		return
	}

	cat, err := h.CategoryService.SetDepth(c.Request.Context(), categoryID, body.Level)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cat)
}

func (h *Handler) ReplaceCategoryMapping(c *gin.Context) {
	categoryID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.MappingRequest
	if !h.bindJSON(c, &body) {
		return
	}

	cat, err := h.CategoryService.ReplaceMapping(c.Request.Context(), categoryID, body.LevelMapping.Mapping())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cat)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	categoryID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.CategoryService.Delete(c.Request.Context(), categoryID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Categoria removida com sucesso"})
}

func (h *Handler) MoveCategory(c *gin.Context) {
	var body contracts.CategoryMoveRequest
	if !h.bindJSON(c, &body) {
		return
	}

	sectorID, err := pkg.ParseULID(body.SectorID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	res, err := h.CategoryService.Move(c.Request.Context(), sectorID, *body.OldIndex, *body.NewIndex)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.NewMoveResponse(res))
}

func (h *Handler) ReorderCategories(c *gin.Context) {
	var body contracts.OrderRequest
	if !h.bindJSON(c, &body) {
		return
	}

	categories, err := h.CategoryService.ApplyOrder(c.Request.Context(), body.Updates())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.OrderResponse[*category.ServiceCategory]{Items: categories})
}
