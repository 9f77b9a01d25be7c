package bookings

import (
	"context"
	"fmt"

	"ticketly/pkg/logger"
)

// EventService is the slice of the catalog the ledger needs: reserving
// seats when a booking is minted and releasing them on cancellation.
// Declared here to keep the dependency one-directional.
type EventService interface {
	ReserveSeats(ctx context.Context, name string, count int) (totalCost float64, err error)
	ReleaseSeats(ctx context.Context, name string, count int) error
}

// Service interface defines the contract for booking business logic
type Service interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error)
	GetBooking(ctx context.Context, id int64) (*BookingResponse, error)
	CancelBooking(ctx context.Context, id int64) (*BookingResponse, error)
}

type service struct {
	repo         Repository
	eventService EventService
	maxTickets   int
	log          *logger.Logger
}

// NewService creates a new booking service instance. maxTickets caps a
// single booking; zero or negative disables the cap.
func NewService(repo Repository, eventService EventService, maxTickets int) Service {
	return &service{
		repo:         repo,
		eventService: eventService,
		maxTickets:   maxTickets,
		log:          logger.GetDefault(),
	}
}

// CreateBooking reserves seats on the named event and mints the receipt.
// The reservation either fully succeeds or the request fails with the
// specific reason; a failed reservation leaves no trace in the ledger.
func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error) {
	if len(req.Customers) != req.NumTickets {
		return nil, fmt.Errorf("%w: %d tickets, %d customers",
			ErrCustomerCount, req.NumTickets, len(req.Customers))
	}

	if s.maxTickets > 0 && req.NumTickets > s.maxTickets {
		return nil, fmt.Errorf("%w: requested %d, limit %d",
			ErrTicketLimit, req.NumTickets, s.maxTickets)
	}

	// Reserve first; the cost comes back with the price snapshotted at
	// reservation time.
	totalCost, err := s.eventService.ReserveSeats(ctx, req.EventName, req.NumTickets)
	if err != nil {
		return nil, err
	}

	booking := s.repo.Create(&Booking{
		EventName:  req.EventName,
		Customers:  req.Customers,
		NumTickets: req.NumTickets,
		TotalCost:  totalCost,
	})

	s.log.LogBookingCreated(ctx, booking.ID, booking.EventName, booking.NumTickets)

	response := booking.ToResponse()
	return &response, nil
}

func (s *service) GetBooking(ctx context.Context, id int64) (*BookingResponse, error) {
	booking, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	response := booking.ToResponse()
	return &response, nil
}

// CancelBooking resolves the booking through the ledger, marks it
// cancelled and instructs the event to release the seats. The ledger mark
// happens first so a concurrent second cancel fails before it can release
// anything.
func (s *service) CancelBooking(ctx context.Context, id int64) (*BookingResponse, error) {
	booking, err := s.repo.Cancel(id)
	if err != nil {
		return nil, err
	}

	// Events are never deleted, so the release can only fail if the
	// ledger and catalog disagree; surface that instead of hiding it.
	if err := s.eventService.ReleaseSeats(ctx, booking.EventName, booking.NumTickets); err != nil {
		return nil, fmt.Errorf("release seats for booking %d: %w", id, err)
	}

	s.log.LogBookingCancelled(ctx, booking.ID, booking.EventName, booking.NumTickets)

	response := booking.ToResponse()
	return &response, nil
}
