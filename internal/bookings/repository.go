package bookings

import (
	"fmt"
	"sync"
	"time"
)

// Repository is the booking ledger: the source of truth for cancellation
// lookups, keyed by booking id.
type Repository interface {
	Create(booking *Booking) *Booking
	GetByID(id int64) (*Booking, error)
	Cancel(id int64) (*Booking, error)
	Count() int
}

type repository struct {
	mu sync.RWMutex

	// nextID increments by one per booking ever created and is never
	// reset, so ids stay unique even after cancellations. The counter is
	// owned by the ledger instance, not shared process-wide.
	nextID int64
	ledger map[int64]*Booking
}

func NewRepository() Repository {
	return &repository{
		ledger: make(map[int64]*Booking),
	}
}

// Create assigns the next id, stamps the creation time and stores the
// booking. Id assignment and storage happen under one lock acquisition.
func (r *repository) Create(booking *Booking) *Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.ID = r.nextID
	r.nextID++
	booking.Status = StatusConfirmed
	booking.CreatedAt = time.Now()

	r.ledger[booking.ID] = booking

	snapshot := *booking
	return &snapshot
}

func (r *repository) GetByID(id int64) (*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.ledger[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBookingNotFound, id)
	}

	snapshot := *booking
	return &snapshot, nil
}

// Cancel atomically checks that the booking is still active and marks it
// cancelled, so the same id can never release inventory twice.
func (r *repository) Cancel(id int64) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.ledger[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBookingNotFound, id)
	}

	if !booking.Status.CanBeCancelled() {
		return nil, fmt.Errorf("%w: %d", ErrAlreadyCancelled, id)
	}

	booking.Cancel()

	snapshot := *booking
	return &snapshot, nil
}

func (r *repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.ledger)
}
