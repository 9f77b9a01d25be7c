package bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ticketly/internal/events"
	"ticketly/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateBooking handles POST /api/v1/bookings
func (c *Controller) CreateBooking(ctx *gin.Context) {
	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	booking, err := c.service.CreateBooking(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusForError(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Booking created successfully", booking, nil)
}

// GetBooking handles GET /api/v1/bookings/:id
func (c *Controller) GetBooking(ctx *gin.Context) {
	id, err := parseBookingID(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	booking, err := c.service.GetBooking(ctx.Request.Context(), id)
	if err != nil {
		response.RespondJSON(ctx, "error", statusForError(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking retrieved successfully", booking, nil)
}

// CancelBooking handles POST /api/v1/bookings/:id/cancel
func (c *Controller) CancelBooking(ctx *gin.Context) {
	id, err := parseBookingID(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	booking, err := c.service.CancelBooking(ctx.Request.Context(), id)
	if err != nil {
		response.RespondJSON(ctx, "error", statusForError(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking cancelled successfully", booking, nil)
}

func parseBookingID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

// statusForError maps booking and catalog errors onto HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrBookingNotFound), errors.Is(err, events.ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyCancelled), errors.Is(err, events.ErrInsufficientInventory):
		return http.StatusConflict
	case errors.Is(err, ErrCustomerCount), errors.Is(err, ErrTicketLimit), errors.Is(err, events.ErrInvalidSeatCount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
