package models

import (
	"fmt"
	"strings"
)

// BookingStatus is the lifecycle status of a booking. A booking starts as
// WAITING and moves exactly once to APPROVED or REJECTED.
type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

// BookingState selects a filter over a user's bookings relative to "now".
type BookingState int

const (
	StateAll BookingState = iota
	StateCurrent
	StatePast
	StateFuture
	StateWaiting
	StateRejected
)

var stateNames = map[BookingState]string{
	StateAll:      "ALL",
	StateCurrent:  "CURRENT",
	StatePast:     "PAST",
	StateFuture:   "FUTURE",
	StateWaiting:  "WAITING",
	StateRejected: "REJECTED",
}

func (s BookingState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("BookingState(%d)", int(s))
}

// ParseBookingState parses a state query value, case-insensitively. Unknown
// input is rejected here, at the boundary, rather than deep in a query
// builder.
func ParseBookingState(s string) (BookingState, error) {
	switch strings.ToUpper(s) {
	case "ALL":
		return StateAll, nil
	case "CURRENT":
		return StateCurrent, nil
	case "PAST":
		return StatePast, nil
	case "FUTURE":
		return StateFuture, nil
	case "WAITING":
		return StateWaiting, nil
	case "REJECTED":
		return StateRejected, nil
	default:
		return StateAll, fmt.Errorf("Unknown state: %s", s)
	}
}
