package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для управления поездками (CRUD), защищены API-ключом
	trips := api.Group("/trips", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		trips.POST("", h.createTrip)
		trips.GET("", h.listTrips)
		trips.GET("/:id", h.getTrip)
		trips.PUT("/:id", h.updateTrip)
		trips.DELETE("/:id", h.deleteTrip)
		trips.POST("/:id/planned-locations", h.addPlannedLocation)
		trips.GET("/:id/planned-locations", h.listPlannedLocations)
		trips.GET("/:id/locations", h.listTripLocations)
	}

	// Маршрут для передачи геопозиции (вызывается мобильным клиентом)
	api.POST("/locations", h.submitLocation)

	// Маршруты для работы с оповещениями
	alerts := api.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.GET("/stats", APIKeyAuthMiddleware(h.cfg, h.logger), h.getStats)
		alerts.GET("/:id", h.getAlert)
		alerts.POST("/:id/respond", h.respondToAlert)
		alerts.POST("/manual", h.createManualAlert)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
