package booking

import (
	"context"
	"fmt"
	"time"

	"shareit/internal/models"
	"shareit/internal/repository"
	"shareit/internal/shareiterrors"
)

// BookingService defines the business logic for the booking lifecycle
type BookingService struct {
	bookings repository.BookingDB
	items    repository.ItemDB
	users    repository.UserDB
}

// NewBookingService creates a new BookingService instance
func NewBookingService(bookings repository.BookingDB, items repository.ItemDB, users repository.UserDB) *BookingService {
	return &BookingService{
		bookings: bookings,
		items:    items,
		users:    users,
	}
}

// CreateBooking validates the requested window and records a WAITING booking
func (s *BookingService) CreateBooking(ctx context.Context, userID, itemID int64, start, end time.Time) (models.Booking, error) {
	now := time.Now().UTC()

	if start.IsZero() || end.IsZero() {
		return models.Booking{}, fmt.Errorf("service: %w - start and end are required", shareiterrors.ErrValidation)
	}
	if start.Before(now) {
		return models.Booking{}, fmt.Errorf("service: %w - start must not be in the past", shareiterrors.ErrValidation)
	}
	if !end.After(start) {
		return models.Booking{}, fmt.Errorf("service: %w - end must be after start", shareiterrors.ErrValidation)
	}

	booker, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("service: failed to resolve booker %d: %w", userID, err)
	}

	item, err := s.items.GetItemByID(ctx, itemID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("service: failed to resolve item %d: %w", itemID, err)
	}

	if !item.Available {
		return models.Booking{}, fmt.Errorf("service: %w - item %d", shareiterrors.ErrItemUnavailable, itemID)
	}

	// The owner booking their own item is reported as not-found rather than
	// forbidden so the response does not confirm ownership to probing callers.
	if item.OwnerID == userID {
		return models.Booking{}, fmt.Errorf("service: owner cannot book own item %d: %w", itemID, shareiterrors.ErrItemNotFound)
	}

	b := models.Booking{
		Start:  start,
		End:    end,
		Status: models.StatusWaiting,
		Item:   item,
		Booker: booker,
	}

	created, err := s.bookings.CreateBooking(ctx, b)
	if err != nil {
		return models.Booking{}, fmt.Errorf("service: failed to record booking for item %d by user %d: %w", itemID, userID, err)
	}
	return created, nil
}

// ApproveBooking performs the single-shot WAITING -> APPROVED/REJECTED
// transition, allowed only to the item owner.
func (s *BookingService) ApproveBooking(ctx context.Context, bookingID, userID int64, approved bool) (models.Booking, error) {
	b, err := s.bookings.GetBookingByID(ctx, bookingID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("service: failed to get booking %d: %w", bookingID, err)
	}

	if b.Item.OwnerID != userID {
		return models.Booking{}, fmt.Errorf("service: %w - only the owner of item %d may decide booking %d",
			shareiterrors.ErrForbidden, b.Item.ID, bookingID)
	}
	if b.Status != models.StatusWaiting {
		return models.Booking{}, fmt.Errorf("service: %w - current status %s", shareiterrors.ErrAlreadyProcessed, b.Status)
	}

	status := models.StatusRejected
	if approved {
		status = models.StatusApproved
	}

	applied, err := s.bookings.UpdateStatusIfWaiting(ctx, bookingID, status)
	if err != nil {
		return models.Booking{}, fmt.Errorf("service: failed to update booking %d: %w", bookingID, err)
	}
	if !applied {
		// Lost the race against a concurrent decision.
		return models.Booking{}, fmt.Errorf("service: %w - booking %d", shareiterrors.ErrAlreadyProcessed, bookingID)
	}

	b.Status = status
	return b, nil
}

// GetBookingByID returns a booking, visible only to the booker or the item
// owner; anyone else gets not-found.
func (s *BookingService) GetBookingByID(ctx context.Context, bookingID, userID int64) (models.Booking, error) {
	b, err := s.bookings.GetBookingByID(ctx, bookingID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("service: failed to get booking %d: %w", bookingID, err)
	}

	if b.Booker.ID != userID && b.Item.OwnerID != userID {
		return models.Booking{}, fmt.Errorf("service: booking %d is not visible to user %d: %w",
			bookingID, userID, shareiterrors.ErrBookingNotFound)
	}
	return b, nil
}

// GetUserBookings lists bookings made by the user, filtered by state,
// newest start first.
func (s *BookingService) GetUserBookings(ctx context.Context, userID int64, state models.BookingState) ([]models.Booking, error) {
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("service: failed to resolve user %d: %w", userID, err)
	}

	bookings, err := s.bookings.GetBookerBookings(ctx, userID, state, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bookings for user %d: %w", userID, err)
	}
	return bookings, nil
}

// GetOwnerBookings lists bookings of items owned by the user, filtered by
// state, newest start first.
func (s *BookingService) GetOwnerBookings(ctx context.Context, userID int64, state models.BookingState) ([]models.Booking, error) {
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("service: failed to resolve user %d: %w", userID, err)
	}

	bookings, err := s.bookings.GetOwnerBookings(ctx, userID, state, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("service: failed to list owner bookings for user %d: %w", userID, err)
	}
	return bookings, nil
}
