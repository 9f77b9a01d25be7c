package events

import "errors"

var (
	// ErrEventNotFound is returned when no event matches the requested name.
	ErrEventNotFound = errors.New("event not found")

	// ErrEventExists is returned when creating an event whose name is
	// already registered. Names are the catalog key.
	ErrEventExists = errors.New("event already exists")

	// ErrInvalidEventType is returned for a type tag outside the closed
	// Movie/Concert/Sport set.
	ErrInvalidEventType = errors.New("invalid event type")

	// ErrMissingField is returned when the payload required by the
	// requested variant is absent or incomplete.
	ErrMissingField = errors.New("missing required field")

	// ErrInsufficientInventory is returned when a reservation asks for
	// more seats than are available. The seat count is left untouched.
	ErrInsufficientInventory = errors.New("insufficient seats available")

	// ErrInvalidSeatCount is returned for non-positive reserve or release
	// counts.
	ErrInvalidSeatCount = errors.New("seat count must be positive")
)
