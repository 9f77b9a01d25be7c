package bookings_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketly/internal/bookings"
	"ticketly/internal/events"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	events.RegisterValidations()

	engine := gin.New()
	api := engine.Group("/api/v1")

	eventService := events.NewService(events.NewRepository())
	events.SetupEventRoutes(api, events.NewController(eventService))

	bookingService := bookings.NewService(bookings.NewRepository(), eventService, 0)
	bookings.SetupBookingRoutes(api, bookings.NewController(bookingService))

	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func createExpoHTTP(t *testing.T, engine *gin.Engine) {
	t.Helper()

	recorder := doJSON(t, engine, http.MethodPost, "/api/v1/events", gin.H{
		"name":         "Expo",
		"date":         "2026-09-01",
		"time":         "10:00",
		"venue":        gin.H{"name": "Expo Hall", "address": "3 Fair Way"},
		"total_seats":  10,
		"ticket_price": 5.0,
		"type":         "Concert",
		"concert":      gin.H{"artist": "Opening Act"},
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
}

func bookingPayload(numTickets int) gin.H {
	custs := make([]gin.H, numTickets)
	for i := range custs {
		custs[i] = gin.H{
			"name":  "Customer",
			"email": "customer@example.com",
			"phone": "555-0100",
		}
	}
	return gin.H{
		"event_name":  "Expo",
		"num_tickets": numTickets,
		"customers":   custs,
	}
}

func TestBookingLifecycleOverHTTP(t *testing.T) {
	engine := newTestRouter()
	createExpoHTTP(t, engine)

	// book three seats
	recorder := doJSON(t, engine, http.MethodPost, "/api/v1/bookings", bookingPayload(3))
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var created struct {
		Data bookings.BookingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, int64(0), created.Data.BookingID)
	assert.Equal(t, 15.0, created.Data.TotalCost)

	// availability reflects the reservation
	recorder = doJSON(t, engine, http.MethodGet, "/api/v1/events/availability", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"total_available_seats":7`)

	// receipt is retrievable
	recorder = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/v1/bookings/%d", created.Data.BookingID), nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	// cancel restores availability
	recorder = doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/v1/bookings/%d/cancel", created.Data.BookingID), nil)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	recorder = doJSON(t, engine, http.MethodGet, "/api/v1/events/availability", nil)
	assert.Contains(t, recorder.Body.String(), `"total_available_seats":10`)

	// second cancel is a conflict
	recorder = doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/v1/bookings/%d/cancel", created.Data.BookingID), nil)
	require.Equal(t, http.StatusConflict, recorder.Code)
}

func TestBookingErrorsOverHTTP(t *testing.T) {
	engine := newTestRouter()
	createExpoHTTP(t, engine)

	// unknown event
	payload := bookingPayload(1)
	payload["event_name"] = "Ghost"
	recorder := doJSON(t, engine, http.MethodPost, "/api/v1/bookings", payload)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	// more tickets than seats
	recorder = doJSON(t, engine, http.MethodPost, "/api/v1/bookings", bookingPayload(11))
	assert.Equal(t, http.StatusConflict, recorder.Code)

	// binding rejects a zero ticket count before the service runs
	payload = bookingPayload(1)
	payload["num_tickets"] = 0
	recorder = doJSON(t, engine, http.MethodPost, "/api/v1/bookings", payload)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// malformed booking id
	recorder = doJSON(t, engine, http.MethodPost, "/api/v1/bookings/abc/cancel", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// never-issued booking id
	recorder = doJSON(t, engine, http.MethodPost, "/api/v1/bookings/999/cancel", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCreateEventValidationOverHTTP(t *testing.T) {
	engine := newTestRouter()

	// type tag outside the closed set fails binding
	recorder := doJSON(t, engine, http.MethodPost, "/api/v1/events", gin.H{
		"name":         "Gala",
		"date":         "2026-09-01",
		"time":         "10:00",
		"venue":        gin.H{"name": "Hall", "address": "1 Way"},
		"total_seats":  10,
		"ticket_price": 5.0,
		"type":         "Opera",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// duplicate names conflict
	createExpoHTTP(t, engine)
	recorder = doJSON(t, engine, http.MethodPost, "/api/v1/events", gin.H{
		"name":         "Expo",
		"date":         "2026-09-01",
		"time":         "10:00",
		"venue":        gin.H{"name": "Expo Hall", "address": "3 Fair Way"},
		"total_seats":  10,
		"ticket_price": 5.0,
		"type":         "Concert",
		"concert":      gin.H{"artist": "Opening Act"},
	})
	assert.Equal(t, http.StatusConflict, recorder.Code)
}
