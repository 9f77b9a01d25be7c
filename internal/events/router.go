package events

import (
	"github.com/gin-gonic/gin"
)

func SetupEventRoutes(router *gin.RouterGroup, controller Controller) {
	events := router.Group("/events")
	{
		events.POST("", controller.CreateEvent)                  // POST /api/v1/events - Create event
		events.GET("", controller.GetAllEvents)                  // GET /api/v1/events - Browse all events
		events.GET("/availability", controller.GetAvailability)  // GET /api/v1/events/availability - Seats left across events
		events.GET("/:name", controller.GetEvent)                // GET /api/v1/events/:name - Get event details
	}
}
