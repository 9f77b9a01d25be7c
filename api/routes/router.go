// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ticketly/internal/bookings"
	"ticketly/internal/events"
	"ticketly/internal/shared/config"
)

// Router holds all route dependencies
type Router struct {
	config *config.Config
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config) *Router {
	return &Router{
		config: cfg,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		// The event catalog must be wired before bookings so the booking
		// service can borrow its inventory operations
		eventService := r.setupEventRoutes(api)
		r.setupBookingRoutes(api, eventService)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		// All state is process-memory; if we can answer, we are healthy
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "ticketly",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

// setupEventRoutes configures event catalog routes and returns the event
// service for downstream wiring
func (r *Router) setupEventRoutes(rg *gin.RouterGroup) events.Service {
	eventRepo := events.NewRepository()
	eventService := events.NewService(eventRepo)
	eventController := events.NewController(eventService)

	events.SetupEventRoutes(rg, eventController)

	return eventService
}

// setupBookingRoutes configures booking ledger routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup, eventService events.Service) {
	bookingRepo := bookings.NewRepository()
	bookingService := bookings.NewService(bookingRepo, eventService, r.config.Booking.MaxTicketsPerBooking)
	bookingController := bookings.NewController(bookingService)

	bookings.SetupBookingRoutes(rg, bookingController)
}
