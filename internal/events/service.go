package events

import (
	"context"
	"fmt"
	"time"

	"ticketly/pkg/logger"
)

type Service interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*EventResponse, error)
	GetEventByName(ctx context.Context, name string) (*EventResponse, error)
	GetAllEvents(ctx context.Context) ([]EventResponse, error)
	TotalAvailableSeats(ctx context.Context) int

	// Inventory operations used by the booking ledger
	ReserveSeats(ctx context.Context, name string, count int) (totalCost float64, err error)
	ReleaseSeats(ctx context.Context, name string, count int) error
}

type service struct {
	repo Repository
	log  *logger.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		log:  logger.GetDefault(),
	}
}

// CreateEvent constructs the variant named by the request's type tag and
// registers it. Construction fixes TotalSeats and opens the full capacity.
func (s *service) CreateEvent(ctx context.Context, req CreateEventRequest) (*EventResponse, error) {
	eventType, err := ParseEventType(req.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEventType, req.Type)
	}

	event := &Event{
		Name:           req.Name,
		Date:           req.Date,
		Time:           req.Time,
		Venue:          req.Venue,
		TotalSeats:     req.TotalSeats,
		AvailableSeats: req.TotalSeats,
		TicketPrice:    req.TicketPrice,
		Type:           eventType,
		CreatedAt:      time.Now(),
	}

	if err := attachVariantDetails(event, req); err != nil {
		return nil, err
	}

	if err := s.repo.Create(event); err != nil {
		return nil, err
	}

	s.log.LogEventCreated(ctx, event.Name, event.Type.String())

	response := event.ToResponse()
	return &response, nil
}

// attachVariantDetails validates that the payload matching the variant tag
// is present and complete, then attaches it. Payloads for other variants
// are rejected as a tag/payload mismatch.
func attachVariantDetails(event *Event, req CreateEventRequest) error {
	switch event.Type {
	case TypeMovie:
		if req.Concert != nil || req.Sport != nil {
			return fmt.Errorf("%w: movie event with non-movie payload", ErrInvalidEventType)
		}
		if req.Movie == nil {
			return fmt.Errorf("%w: movie", ErrMissingField)
		}
		if req.Movie.Genre == "" {
			return fmt.Errorf("%w: movie.genre", ErrMissingField)
		}
		if req.Movie.Actor == "" {
			return fmt.Errorf("%w: movie.actor", ErrMissingField)
		}
		if req.Movie.Actress == "" {
			return fmt.Errorf("%w: movie.actress", ErrMissingField)
		}
		event.Movie = req.Movie

	case TypeConcert:
		if req.Movie != nil || req.Sport != nil {
			return fmt.Errorf("%w: concert event with non-concert payload", ErrInvalidEventType)
		}
		if req.Concert == nil {
			return fmt.Errorf("%w: concert", ErrMissingField)
		}
		if req.Concert.Artist == "" {
			return fmt.Errorf("%w: concert.artist", ErrMissingField)
		}
		event.Concert = req.Concert

	case TypeSport:
		if req.Movie != nil || req.Concert != nil {
			return fmt.Errorf("%w: sport event with non-sport payload", ErrInvalidEventType)
		}
		if req.Sport == nil {
			return fmt.Errorf("%w: sport", ErrMissingField)
		}
		if req.Sport.Sport == "" {
			return fmt.Errorf("%w: sport.sport", ErrMissingField)
		}
		if req.Sport.Teams == "" {
			return fmt.Errorf("%w: sport.teams", ErrMissingField)
		}
		event.Sport = req.Sport

	default:
		return fmt.Errorf("%w: %q", ErrInvalidEventType, event.Type)
	}

	return nil
}

func (s *service) GetEventByName(ctx context.Context, name string) (*EventResponse, error) {
	event, err := s.repo.GetByName(name)
	if err != nil {
		return nil, err
	}

	response := event.ToResponse()
	return &response, nil
}

// GetAllEvents returns events in registration order
func (s *service) GetAllEvents(ctx context.Context) ([]EventResponse, error) {
	responses := make([]EventResponse, 0, s.repo.Count())
	for event := range s.repo.All() {
		responses = append(responses, event.ToResponse())
	}
	return responses, nil
}

func (s *service) TotalAvailableSeats(ctx context.Context) int {
	return s.repo.TotalAvailableSeats()
}

// ReserveSeats decrements availability for the named event and returns the
// cost of the reserved tickets at the event's current price. The price is
// snapshotted here; later price changes would not affect issued bookings.
func (s *service) ReserveSeats(ctx context.Context, name string, count int) (float64, error) {
	event, err := s.repo.Reserve(name, count)
	if err != nil {
		return 0, err
	}

	s.log.LogSeatsReserved(ctx, name, count, event.AvailableSeats)
	return event.PriceFor(count), nil
}

// ReleaseSeats re-increments availability for the named event
func (s *service) ReleaseSeats(ctx context.Context, name string, count int) error {
	event, err := s.repo.Release(name, count)
	if err != nil {
		return err
	}

	s.log.LogSeatsReleased(ctx, name, count, event.AvailableSeats)
	return nil
}
