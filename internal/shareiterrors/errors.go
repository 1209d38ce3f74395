package shareiterrors

import "errors"

// Entity lookup errors. These also cover deliberate access-masking: reading
// a booking as neither booker nor owner, and an owner booking their own
// item, both surface as not-found.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrRequestNotFound = errors.New("request not found")
)

// Business rule errors.
var (
	ErrValidation        = errors.New("invalid request")
	ErrForbidden         = errors.New("operation allowed only for the owner")
	ErrEmailTaken        = errors.New("email already in use")
	ErrAlreadyProcessed  = errors.New("booking already processed")
	ErrItemUnavailable   = errors.New("item is not available for booking")
	ErrNoCompletedRental = errors.New("commenting requires a completed booking of the item")
)
