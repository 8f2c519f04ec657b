package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты волонтеров
	volunteer := api.Group("/volunteer")
	{
		volunteer.POST("/register", h.registerVolunteer)
		volunteer.PUT("/active", h.setVolunteerActive)
		volunteer.GET("/nearby", h.queryNearby)
		volunteer.GET("/:id", h.getVolunteer)
	}

	// Маршруты геолокации
	location := api.Group("/location")
	{
		location.POST("/update", h.updateLocation)
		location.GET("/user/:id", h.getUserLocation)
	}

	// Маршруты инцидентов
	sos := api.Group("/sos")
	{
		sos.POST("/trigger", h.triggerSOS)
		sos.PUT("/:id/resolve", h.resolveEmergency)
	}
	api.POST("/distress/predict", h.predictDistress)

	// История и контакты закрыты API-ключом
	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		protected.GET("/history/emergencies", h.getHistory)
		protected.GET("/history/analytics", h.getAnalytics)
		protected.POST("/contacts", h.addContact)
		protected.GET("/contacts", h.listContacts)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
