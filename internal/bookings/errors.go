package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the ledger holds no booking with
	// the requested id.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAlreadyCancelled is returned when cancelling a booking whose
	// inventory has already been released.
	ErrAlreadyCancelled = errors.New("booking already cancelled")

	// ErrCustomerCount is returned when the customer list does not carry
	// one ticket-holder per requested ticket.
	ErrCustomerCount = errors.New("customer count must match ticket count")

	// ErrTicketLimit is returned when a single booking asks for more
	// tickets than the configured per-booking cap.
	ErrTicketLimit = errors.New("ticket count exceeds per-booking limit")
)
