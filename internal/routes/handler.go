package routes

import (
	"strconv"
	"strings"

	appErrors "github.com/jupiter96/tradespeoplehub-sub000/internal/errors"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/logger"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

type Handler struct {
	SectorService      SectorService
	CategoryService    CategoryService
	SubCategoryService SubCategoryService
	Counter            TaxonomyCounter
	Health             HealthChecker
}

func (h *Handler) parsePagination(c *gin.Context) pkg.PaginationParams {
	pageNum, limitNum := 1, pkg.DefaultLimit
	if p, err := pkg.ParseInt(c.DefaultQuery("page", "1")); err == nil && p > 0 {
		pageNum = p
	}
	if l, err := pkg.ParseInt(c.DefaultQuery("limit", strconv.Itoa(pkg.DefaultLimit))); err == nil && l > 0 {
		limitNum = l
	}

	p := pkg.PaginationParams{Page: pageNum, Limit: limitNum}
	p.Normalize()
	return p
}

// parseListParams lê page, limit, search, isActive, sortBy e sortDir.
func (h *Handler) parseListParams(c *gin.Context) (*pkg.ListParams, error) {
	params := &pkg.ListParams{
		Pagination: h.parsePagination(c),
		Search:     c.Query("search"),
		SortBy:     c.Query("sortBy"),
		SortDir:    c.Query("sortDir"),
	}

	if raw := strings.TrimSpace(c.Query("isActive")); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, appErrors.NewValidationError("isActive", "isActive deve ser true ou false")
		}
		params.IsActive = &active
	}
	return params, nil
}

func (h *Handler) parseID(c *gin.Context, name string) (ulid.ULID, error) {
	id, err := pkg.ParseULID(c.Param(name))
	if err != nil {
		return ulid.ULID{}, appErrors.NewValidationError(name, "formato inválido")
	}
	return id, nil
}

// parseOptionalID lê um ULID opcional da query string.
func (h *Handler) parseOptionalID(c *gin.Context, name string) (*ulid.ULID, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	id, err := pkg.ParseULID(raw)
	if err != nil {
		return nil, appErrors.NewValidationError(name, "formato inválido")
	}
	return &id, nil
}

func (h *Handler) bindJSON(c *gin.Context, body interface{}) bool {
	if err := c.ShouldBindJSON(body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return false
	}
	return true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if requestID, ok := c.Get("request_id"); ok {
		event = event.Interface("request_id", requestID)
	}
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
