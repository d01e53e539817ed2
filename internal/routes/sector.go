package routes

import (
	"net/http"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/contracts"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/sector"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateSector(c *gin.Context) {
	var body contracts.SectorCreateRequest
	if !h.bindJSON(c, &body) {
		return
	}

	s := sector.Sector{
		Name:        body.Name,
		Slug:        body.Slug,
		Description: body.Description,
		Icon:        body.Icon,
	}

	ctx := c.Request.Context()
	if err := h.SectorService.Create(ctx, &s); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, s)
}

func (h *Handler) ListSectors(c *gin.Context) {
	params, err := h.parseListParams(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	sectors, total, err := h.SectorService.List(ctx, params)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(sectors, params.Pagination.Page, params.Pagination.Limit, total))
}

func (h *Handler) GetSector(c *gin.Context) {
	sectorID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	s, err := h.SectorService.GetByID(c.Request.Context(), sectorID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, s)
}

func (h *Handler) UpdateSector(c *gin.Context) {
	sectorID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.NodeUpdateRequest
	if !h.bindJSON(c, &body) {
		return
	}

	s, err := h.SectorService.Update(c.Request.Context(), sectorID, sector.UpdateInput(body))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, s)
}

func (h *Handler) SetSectorStatus(c *gin.Context) {
	sectorID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.StatusRequest
	if !h.bindJSON(c, &body) {
		return
	}

	s, err := h.SectorService.SetActive(c.Request.Context(), sectorID, *body.IsActive)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, s)
}

func (h *Handler) DeleteSector(c *gin.Context) {
	sectorID, err := h.parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.SectorService.Delete(c.Request.Context(), sectorID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Setor removido com sucesso"})
}

func (h *Handler) MoveSector(c *gin.Context) {
	var body contracts.MoveRequest
	if !h.bindJSON(c, &body) {
		return
	}

	res, err := h.SectorService.Move(c.Request.Context(), *body.OldIndex, *body.NewIndex)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.NewMoveResponse(res))
}

func (h *Handler) ReorderSectors(c *gin.Context) {
	var body contracts.OrderRequest
	if !h.bindJSON(c, &body) {
		return
	}

	sectors, err := h.SectorService.ApplyOrder(c.Request.Context(), body.Updates())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.OrderResponse[*sector.Sector]{Items: sectors})
}
