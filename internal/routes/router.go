package routes

import "github.com/gin-gonic/gin"

// RegisterTaxonomy monta as rotas administrativas da taxonomia no grupo informado.
func RegisterTaxonomy(api *gin.RouterGroup, h *Handler) {
	sectors := api.Group("/sectors")
	{
		sectors.POST("", h.CreateSector)
		sectors.GET("", h.ListSectors)
		sectors.POST("/move", h.MoveSector)
		sectors.PUT("/order", h.ReorderSectors)
		sectors.GET("/:id", h.GetSector)
		sectors.PATCH("/:id", h.UpdateSector)
		sectors.PATCH("/:id/status", h.SetSectorStatus)
		sectors.DELETE("/:id", h.DeleteSector)
	}

	categories := api.Group("/categories")
	{
		categories.POST("", h.CreateCategory)
		categories.GET("", h.ListCategories)
		categories.POST("/move", h.MoveCategory)
		categories.PUT("/order", h.ReorderCategories)
		categories.GET("/:id", h.GetCategory)
		categories.GET("/:id/tree", h.GetCategoryTree)
		categories.PATCH("/:id", h.UpdateCategory)
		categories.PATCH("/:id/status", h.SetCategoryStatus)
		categories.PATCH("/:id/depth", h.SetCategoryDepth)
		categories.PUT("/:id/mapping", h.ReplaceCategoryMapping)
		categories.DELETE("/:id", h.DeleteCategory)
	}

	subcategories := api.Group("/subcategories")
	{
		subcategories.POST("", h.CreateSubCategory)
		subcategories.GET("", h.ListSubCategories)
		subcategories.POST("/move", h.MoveSubCategory)
		subcategories.PUT("/order", h.ReorderSubCategories)
		subcategories.GET("/:id", h.GetSubCategory)
		subcategories.PATCH("/:id", h.UpdateSubCategory)
		subcategories.PATCH("/:id/status", h.SetSubCategoryStatus)
		subcategories.DELETE("/:id", h.DeleteSubCategory)
	}

	taxonomy := api.Group("/taxonomy")
	{
		taxonomy.GET("/attribute-types", h.ListAttributeTypes)
		taxonomy.GET("/stats", h.GetTaxonomyStats)
	}
}
