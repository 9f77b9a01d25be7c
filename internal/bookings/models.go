package bookings

import "time"

// Customer is an immutable contact record, one per ticket. It is owned by
// the booking that references it.
type Customer struct {
	Name  string `json:"name" binding:"required,min=1,max=255"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required,min=3,max=32"`
}

// Booking is the receipt for one reservation against one event. The id is
// assigned by the ledger and never reused; TotalCost snapshots the price at
// booking time. A booking never mutates after creation except for the
// Confirmed -> Cancelled transition.
type Booking struct {
	ID          int64      `json:"id"`
	EventName   string     `json:"event_name"`
	Customers   []Customer `json:"customers"`
	NumTickets  int        `json:"num_tickets"`
	TotalCost   float64    `json:"total_cost"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// Cancel marks the booking cancelled. The ledger entry is retained for
// audit; only its inventory effect is reversed by the caller.
func (b *Booking) Cancel() {
	b.Status = StatusCancelled
	now := time.Now()
	b.CancelledAt = &now
}

// ToResponse converts a Booking to its API representation
func (b *Booking) ToResponse() BookingResponse {
	return BookingResponse{
		BookingID:   b.ID,
		EventName:   b.EventName,
		Customers:   b.Customers,
		NumTickets:  b.NumTickets,
		TotalCost:   b.TotalCost,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
		CancelledAt: b.CancelledAt,
	}
}

type CreateBookingRequest struct {
	EventName  string     `json:"event_name" binding:"required"`
	NumTickets int        `json:"num_tickets" binding:"required,gt=0"`
	Customers  []Customer `json:"customers" binding:"required,min=1,dive"`
}

type BookingResponse struct {
	BookingID   int64      `json:"booking_id"`
	EventName   string     `json:"event_name"`
	Customers   []Customer `json:"customers"`
	NumTickets  int        `json:"num_tickets"`
	TotalCost   float64    `json:"total_cost"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}
