package events

import "strings"

// EventType is the closed set of event kinds. Variants share the same
// inventory behaviour and differ only in descriptive payload.
type EventType string

const (
	TypeMovie   EventType = "MOVIE"
	TypeConcert EventType = "CONCERT"
	TypeSport   EventType = "SPORT"
)

// ParseEventType maps a request tag onto an EventType, case-insensitively.
func ParseEventType(tag string) (EventType, error) {
	switch EventType(strings.ToUpper(strings.TrimSpace(tag))) {
	case TypeMovie:
		return TypeMovie, nil
	case TypeConcert:
		return TypeConcert, nil
	case TypeSport:
		return TypeSport, nil
	}
	return "", ErrInvalidEventType
}

func (t EventType) IsValid() bool {
	switch t {
	case TypeMovie, TypeConcert, TypeSport:
		return true
	}
	return false
}

func (t EventType) String() string {
	return string(t)
}
