package events

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketly/internal/shared/utils/response"
)

type Controller interface {
	CreateEvent(c *gin.Context)
	GetEvent(c *gin.Context)
	GetAllEvents(c *gin.Context)
	GetAvailability(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateEvent(c *gin.Context) {
	var req CreateEventRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	event, err := ctrl.service.CreateEvent(c.Request.Context(), req)
	if err != nil {
		response.RespondJSON(c, "error", statusForError(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Event created successfully", event, nil)
}

func (ctrl *controller) GetEvent(c *gin.Context) {
	name := c.Param("name")

	event, err := ctrl.service.GetEventByName(c.Request.Context(), name)
	if err != nil {
		response.RespondJSON(c, "error", statusForError(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Event retrieved successfully", event, nil)
}

func (ctrl *controller) GetAllEvents(c *gin.Context) {
	events, err := ctrl.service.GetAllEvents(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Events retrieved successfully", events, nil)
}

func (ctrl *controller) GetAvailability(c *gin.Context) {
	availability := AvailabilityResponse{
		TotalAvailableSeats: ctrl.service.TotalAvailableSeats(c.Request.Context()),
	}

	response.RespondJSON(c, "success", http.StatusOK, "Availability retrieved successfully", availability, nil)
}

// statusForError maps catalog errors onto HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEventExists):
		return http.StatusConflict
	case errors.Is(err, ErrInsufficientInventory):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidEventType), errors.Is(err, ErrMissingField), errors.Is(err, ErrInvalidSeatCount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
