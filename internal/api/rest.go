package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, h *Handler) {
	router.GET("/health", h.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/owners", h.CreateOwner)
		v1.GET("/owners", h.ListOwners)
		v1.GET("/owners/:id", h.GetOwner)

		v1.POST("/properties", h.CreateProperty)
		v1.GET("/properties", h.ListProperties)
		v1.GET("/properties/:id", h.GetProperty)
		v1.DELETE("/properties/:id", h.DeleteProperty)

		v1.POST("/properties/:id/media", h.UploadMedia)
		v1.GET("/properties/:id/media", h.ListMedia)

		v1.POST("/properties/:id/interested", h.CreateInterestedParty)
		v1.GET("/properties/:id/interested", h.ListInterestedParties)

		v1.POST("/interested/:id/interactions", h.AppendInteraction)
		v1.GET("/interested/:id/interactions", h.ListInteractions)

		v1.GET("/reports/summary", h.ReportSummary)

		v1.GET("/cep/:code", h.LookupCEP)
	}
}
