package routes

import (
	"net/http"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/contracts"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/subcategory"
	appErrors "github.com/jupiter96/tradespeoplehub-sub000/internal/errors"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateSubCategory(c *gin.Context) {
	var body contracts.SubCategoryCreateRequest
	if !h.bindJSON(c, &body) {
		return
	}

	categoryID, err := pkg.ParseULID(body.CategoryID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	parentID, err := pkg.MustParseULIDPtr(body.ParentID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	sub := subcategory.SubCategory{
		CategoryId:  categoryID,
		ParentId:    parentID,
		Name:        body.Name,
		Slug:        body.Slug,
		Description: body.Description,
		Icon:        body.Icon,
	}

	if err := h.SubCategoryService.Create(c.Request.Context(), &sub); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

func (h *Handler) ListSubCategories(c *gin.Context) {
	params, err := h.parseListParams(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var filter subcategory.ListFilter
	if filter.CategoryId, err = h.parseOptionalID(c, "categoryId"); err != nil {
		h.respondError(c, err)
		return
	}
	if filter.ParentId, err = h.parseOptionalID(c, "parentId"); err != nil {
		h.respondError(c, err)
		return
	}
	if raw := c.Query("level"); raw != "" {
		level, err := pkg.ParseInt(raw)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("level", "nível deve ser numérico"))
			return
		}
		filter.Level = &level
	}

	subs, total, err := h.SubCategoryService.List(c.Request.Context(), filter, params)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(subs, params.Pagination.Page, params.Pagination.Limit, total))
}

func (h *Handler) GetSubCategory(c *gin.Context) {
	subCategoryID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	sub, err := h.SubCategoryService.GetByID(c.Request.Context(), subCategoryID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

func (h *Handler) UpdateSubCategory(c *gin.Context) {
	subCategoryID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.NodeUpdateRequest
	if !h.bindJSON(c, &body) {
		return
	}

	sub, err := h.SubCategoryService.Update(c.Request.Context(), subCategoryID, subcategory.UpdateInput(body))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

func (h *Handler) SetSubCategoryStatus(c *gin.Context) {
	subCategoryID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.StatusRequest
	if !h.bindJSON(c, &body) {
		return
	}

	sub, err := h.SubCategoryService.SetActive(c.Request.Context(), subCategoryID, *body.IsActive)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

func (h *Handler) DeleteSubCategory(c *gin.Context) {
	subCategoryID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ids, err := h.SubCategoryService.Delete(c.Request.Context(), subCategoryID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	deleted := make([]string, len(ids))
	for i, id := range ids {
		deleted[i] = id.String()
	}
	c.JSON(http.StatusOK, contracts.DeleteResponse{Deleted: deleted})
}

func (h *Handler) MoveSubCategory(c *gin.Context) {
	var body contracts.SubCategoryMoveRequest
	if !h.bindJSON(c, &body) {
		return
	}

	categoryID, err := pkg.ParseULID(body.CategoryID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	parentID, err := pkg.MustParseULIDPtr(body.ParentID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	res, err := h.SubCategoryService.Move(c.Request.Context(), categoryID, parentID, *body.OldIndex, *body.NewIndex)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.NewMoveResponse(res))
}

func (h *Handler) ReorderSubCategories(c *gin.Context) {
	var body contracts.OrderRequest
	if !h.bindJSON(c, &body) {
		return
	}

	subs, err := h.SubCategoryService.ApplyOrder(c.Request.Context(), body.Updates())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.OrderResponse[*subcategory.SubCategory]{Items: subs})
}
