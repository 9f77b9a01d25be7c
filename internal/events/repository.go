package events

import (
	"fmt"
	"iter"
	"sync"
)

// Repository is the catalog store. The implementation is in-memory for the
// process lifetime; events are never deleted once created.
type Repository interface {
	Create(event *Event) error
	GetByName(name string) (*Event, error)
	Reserve(name string, count int) (*Event, error)
	Release(name string, count int) (*Event, error)
	All() iter.Seq[Event]
	TotalAvailableSeats() int
	Count() int
}

type repository struct {
	mu sync.RWMutex

	// events keeps registration order, index resolves name lookups
	events []*Event
	index  map[string]*Event
}

func NewRepository() Repository {
	return &repository{
		index: make(map[string]*Event),
	}
}

func (r *repository) Create(event *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[event.Name]; ok {
		return fmt.Errorf("%w: %q", ErrEventExists, event.Name)
	}

	r.events = append(r.events, event)
	r.index[event.Name] = event
	return nil
}

func (r *repository) GetByName(name string) (*Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEventNotFound, name)
	}

	snapshot := *event
	return &snapshot, nil
}

// Reserve decrements availability for the named event. All seat mutations
// go through the repository lock, so concurrent bookings against the same
// event serialize here. Returns a snapshot of the event after the
// reservation.
func (r *repository) Reserve(name string, count int) (*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEventNotFound, name)
	}

	if err := event.Reserve(count); err != nil {
		return nil, err
	}

	snapshot := *event
	return &snapshot, nil
}

// Release is the inverse of Reserve, performed on cancellation.
func (r *repository) Release(name string, count int) (*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEventNotFound, name)
	}

	if err := event.Release(count); err != nil {
		return nil, err
	}

	snapshot := *event
	return &snapshot, nil
}

// All yields events in registration order. The sequence iterates over a
// snapshot taken under the read lock, so it is restartable and safe to
// consume while other requests mutate seat counts.
func (r *repository) All() iter.Seq[Event] {
	r.mu.RLock()
	snapshot := make([]Event, 0, len(r.events))
	for _, event := range r.events {
		snapshot = append(snapshot, *event)
	}
	r.mu.RUnlock()

	return func(yield func(Event) bool) {
		for _, event := range snapshot {
			if !yield(event) {
				return
			}
		}
	}
}

func (r *repository) TotalAvailableSeats() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, event := range r.events {
		total += event.AvailableSeats
	}
	return total
}

func (r *repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.events)
}
