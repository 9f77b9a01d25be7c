package events

import (
	"fmt"
	"time"
)

// Venue is a static location record. It is immutable after construction
// and may be shared by reference between events since nothing writes to it.
type Venue struct {
	Name    string `json:"name" binding:"required,min=1,max=255"`
	Address string `json:"address" binding:"required,min=1,max=500"`
}

// MovieDetails is the descriptive payload for movie events
type MovieDetails struct {
	Genre   string `json:"genre"`
	Actor   string `json:"actor"`
	Actress string `json:"actress"`
}

// ConcertDetails is the descriptive payload for concert events
type ConcertDetails struct {
	Artist string `json:"artist"`
}

// SportDetails is the descriptive payload for sport events
type SportDetails struct {
	Sport string `json:"sport"`
	Teams string `json:"teams"`
}

// Event owns the capacity state for one schedulable event. The seat
// invariant 0 <= AvailableSeats <= TotalSeats holds at all times; only
// Reserve and Release mutate AvailableSeats, and the repository serializes
// those calls. The variant payloads carry no behaviour.
type Event struct {
	Name           string          `json:"name"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
	Venue          Venue           `json:"venue"`
	TotalSeats     int             `json:"total_seats"`
	AvailableSeats int             `json:"available_seats"`
	TicketPrice    float64         `json:"ticket_price"`
	Type           EventType       `json:"type"`
	Movie          *MovieDetails   `json:"movie,omitempty"`
	Concert        *ConcertDetails `json:"concert,omitempty"`
	Sport          *SportDetails   `json:"sport,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Reserve decrements the available seat count by count. On failure the
// seat count is left unchanged.
func (e *Event) Reserve(count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSeatCount, count)
	}
	if count > e.AvailableSeats {
		return fmt.Errorf("%w: only %d seats available for %q, requested %d",
			ErrInsufficientInventory, e.AvailableSeats, e.Name, count)
	}

	e.AvailableSeats -= count
	return nil
}

// Release increments the available seat count by count. Trust boundary:
// the booking ledger only ever releases what it previously reserved, so
// the event does not re-verify count against TotalSeats.
func (e *Event) Release(count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSeatCount, count)
	}

	e.AvailableSeats += count
	return nil
}

// PriceFor returns the cost of count tickets at the event's current price.
// Pure, no side effects.
func (e *Event) PriceFor(count int) float64 {
	return float64(count) * e.TicketPrice
}

// BookedSeats returns the number of seats currently reserved
func (e *Event) BookedSeats() int {
	return e.TotalSeats - e.AvailableSeats
}

// ToResponse converts an Event to its API representation
func (e *Event) ToResponse() EventResponse {
	return EventResponse{
		Name:           e.Name,
		Date:           e.Date,
		Time:           e.Time,
		Venue:          e.Venue,
		TotalSeats:     e.TotalSeats,
		AvailableSeats: e.AvailableSeats,
		BookedSeats:    e.BookedSeats(),
		TicketPrice:    e.TicketPrice,
		Type:           e.Type,
		Movie:          e.Movie,
		Concert:        e.Concert,
		Sport:          e.Sport,
		CreatedAt:      e.CreatedAt,
	}
}

type CreateEventRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	Time        string  `json:"time" binding:"required,datetime=15:04"`
	Venue       Venue   `json:"venue" binding:"required"`
	TotalSeats  int     `json:"total_seats" binding:"gte=0"`
	TicketPrice float64 `json:"ticket_price" binding:"gte=0"`
	Type        string  `json:"type" binding:"required,eventtype"`

	// Exactly the payload matching Type must be present
	Movie   *MovieDetails   `json:"movie,omitempty"`
	Concert *ConcertDetails `json:"concert,omitempty"`
	Sport   *SportDetails   `json:"sport,omitempty"`
}

type EventResponse struct {
	Name           string          `json:"name"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
	Venue          Venue           `json:"venue"`
	TotalSeats     int             `json:"total_seats"`
	AvailableSeats int             `json:"available_seats"`
	BookedSeats    int             `json:"booked_seats"`
	TicketPrice    float64         `json:"ticket_price"`
	Type           EventType       `json:"type"`
	Movie          *MovieDetails   `json:"movie,omitempty"`
	Concert        *ConcertDetails `json:"concert,omitempty"`
	Sport          *SportDetails   `json:"sport,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

type AvailabilityResponse struct {
	TotalAvailableSeats int `json:"total_available_seats"`
}
