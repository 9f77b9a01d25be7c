package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent(totalSeats int, price float64) *Event {
	return &Event{
		Name:           "Expo",
		Date:           "2026-09-01",
		Time:           "19:30",
		Venue:          Venue{Name: "Main Hall", Address: "1 Center St"},
		TotalSeats:     totalSeats,
		AvailableSeats: totalSeats,
		TicketPrice:    price,
		Type:           TypeConcert,
		Concert:        &ConcertDetails{Artist: "The Openers"},
	}
}

func TestEventReserve(t *testing.T) {
	event := newTestEvent(10, 5.0)

	err := event.Reserve(3)
	require.NoError(t, err)
	assert.Equal(t, 7, event.AvailableSeats)
	assert.Equal(t, 3, event.BookedSeats())
}

func TestEventReserveInsufficientInventory(t *testing.T) {
	event := newTestEvent(10, 5.0)
	require.NoError(t, event.Reserve(3))

	err := event.Reserve(8)
	require.ErrorIs(t, err, ErrInsufficientInventory)

	// failed reservation must not touch the seat count
	assert.Equal(t, 7, event.AvailableSeats)
}

func TestEventReserveAll(t *testing.T) {
	event := newTestEvent(4, 2.5)

	require.NoError(t, event.Reserve(4))
	assert.Equal(t, 0, event.AvailableSeats)

	err := event.Reserve(1)
	require.ErrorIs(t, err, ErrInsufficientInventory)
}

func TestEventReserveInvalidCount(t *testing.T) {
	event := newTestEvent(10, 5.0)

	require.ErrorIs(t, event.Reserve(0), ErrInvalidSeatCount)
	require.ErrorIs(t, event.Reserve(-2), ErrInvalidSeatCount)
	assert.Equal(t, 10, event.AvailableSeats)
}

func TestEventReleaseRestoresAvailability(t *testing.T) {
	event := newTestEvent(10, 5.0)
	require.NoError(t, event.Reserve(6))

	require.NoError(t, event.Release(6))
	assert.Equal(t, 10, event.AvailableSeats)
	assert.Equal(t, 0, event.BookedSeats())
}

func TestEventReleaseInvalidCount(t *testing.T) {
	event := newTestEvent(10, 5.0)

	require.ErrorIs(t, event.Release(0), ErrInvalidSeatCount)
	require.ErrorIs(t, event.Release(-1), ErrInvalidSeatCount)
}

func TestEventPriceFor(t *testing.T) {
	event := newTestEvent(10, 5.0)

	assert.Equal(t, 15.0, event.PriceFor(3))
	assert.Equal(t, 0.0, event.PriceFor(0))

	// pure: no side effect on inventory
	assert.Equal(t, 10, event.AvailableSeats)
}

func TestEventSeatInvariantUnderMixedSequence(t *testing.T) {
	event := newTestEvent(10, 1.0)

	steps := []struct {
		reserve bool
		count   int
	}{
		{true, 4}, {true, 6}, {false, 4}, {true, 2}, {false, 6}, {true, 10},
	}

	reserved := 0
	for _, step := range steps {
		if step.reserve {
			if err := event.Reserve(step.count); err == nil {
				reserved += step.count
			}
		} else {
			require.NoError(t, event.Release(step.count))
			reserved -= step.count
		}

		assert.GreaterOrEqual(t, event.AvailableSeats, 0)
		assert.LessOrEqual(t, event.AvailableSeats, event.TotalSeats)
		assert.Equal(t, event.TotalSeats-reserved, event.AvailableSeats)
	}
}

func TestParseEventType(t *testing.T) {
	for _, tag := range []string{"Movie", "MOVIE", "movie", " movie "} {
		parsed, err := ParseEventType(tag)
		require.NoError(t, err)
		assert.Equal(t, TypeMovie, parsed)
	}

	_, err := ParseEventType("Opera")
	require.ErrorIs(t, err, ErrInvalidEventType)

	assert.True(t, TypeSport.IsValid())
	assert.False(t, EventType("OPERA").IsValid())
}
