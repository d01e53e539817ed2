package routes

import (
	"net/http"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/contracts"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/category"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/taxonomy"
	appErrors "github.com/jupiter96/tradespeoplehub-sub000/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListAttributeTypes(c *gin.Context) {
	c.JSON(http.StatusOK, contracts.AttributeTypesResponse{
		AttributeTypes:   taxonomy.AttributeTypes,
		SectorLevel:      taxonomy.SectorLevel,
		SubCategoryLevel: taxonomy.SubCategoryLevel,
		MinDepth:         taxonomy.MinDepth,
		MaxDepth:         taxonomy.MaxDepth,
		DefaultDepth:     category.DefaultDepth,
	})
}

func (h *Handler) GetTaxonomyStats(c *gin.Context) {
	counts, err := h.Counter.Counts(c.Request.Context())
	if err != nil {
		h.respondError(c, appErrors.NewDatabaseError(err))
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *Handler) HealthCheck(c *gin.Context) {
	if h.Health != nil {
		if err := h.Health.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, contracts.HealthResponse{Status: "degraded", Database: "down"})
			return
		}
	}
	c.JSON(http.StatusOK, contracts.HealthResponse{Status: "ok", Database: "up"})
}
