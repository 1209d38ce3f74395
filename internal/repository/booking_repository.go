package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shareit/internal/models"
	"shareit/internal/shareiterrors"
)

// BookingDB defines booking storage for the sharing system
type BookingDB interface {
	CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error)
	GetBookingByID(ctx context.Context, id int64) (models.Booking, error)
	UpdateStatusIfWaiting(ctx context.Context, id int64, status models.BookingStatus) (bool, error)
	GetBookerBookings(ctx context.Context, bookerID int64, state models.BookingState, now time.Time) ([]models.Booking, error)
	GetOwnerBookings(ctx context.Context, ownerID int64, state models.BookingState, now time.Time) ([]models.Booking, error)
	HasCompletedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

type BookingRepo struct {
	db *sql.DB
}

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// Every read joins item and booker so responses can embed both summaries.
const bookingSelect = `
		SELECT b.id, b.start_date, b.end_date, b.status,
		       i.id, i.name, i.description, i.available, i.owner_id, i.request_id,
		       u.id, u.name, u.email
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		JOIN users u ON u.id = b.booker_id`

func (r *BookingRepo) CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	const q = `
		INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, q, b.Start, b.End, b.Item.ID, b.Booker.ID, b.Status).Scan(&b.ID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("create booking: %w", err)
	}
	return b, nil
}

func (r *BookingRepo) GetBookingByID(ctx context.Context, id int64) (models.Booking, error) {
	q := bookingSelect + `
		WHERE b.id = $1`
	b, err := scanBooking(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, fmt.Errorf("get booking %d: %w", id, shareiterrors.ErrBookingNotFound)
	}
	if err != nil {
		return models.Booking{}, fmt.Errorf("get booking %d: %w", id, err)
	}
	return b, nil
}

// UpdateStatusIfWaiting performs the guarded WAITING -> APPROVED/REJECTED
// transition. The status predicate in the WHERE clause makes the transition
// single-shot: of two concurrent approvals only one can see WAITING.
func (r *BookingRepo) UpdateStatusIfWaiting(ctx context.Context, id int64, status models.BookingStatus) (bool, error) {
	const q = `
		UPDATE bookings
		SET status = $2
		WHERE id = $1
		AND status = 'WAITING'`
	res, err := r.db.ExecContext(ctx, q, id, status)
	if err != nil {
		return false, fmt.Errorf("update booking %d status: %w", id, err)
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *BookingRepo) GetBookerBookings(ctx context.Context, bookerID int64, state models.BookingState, now time.Time) ([]models.Booking, error) {
	return r.listBookings(ctx, `b.booker_id = $1`, bookerID, state, now)
}

func (r *BookingRepo) GetOwnerBookings(ctx context.Context, ownerID int64, state models.BookingState, now time.Time) ([]models.Booking, error) {
	return r.listBookings(ctx, `i.owner_id = $1`, ownerID, state, now)
}

func (r *BookingRepo) HasCompletedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE booker_id = $1
			AND item_id = $2
			AND end_date < $3
			AND status = 'APPROVED'
		)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, bookerID, itemID, now).Scan(&exists); err != nil {
		return false, fmt.Errorf("check completed booking: %w", err)
	}
	return exists, nil
}

// stateClause maps every BookingState variant to its SQL predicate. The
// second return reports whether the predicate uses the $2 "now" parameter.
func stateClause(state models.BookingState) (string, bool) {
	switch state {
	case models.StateCurrent:
		return ` AND b.start_date <= $2 AND b.end_date > $2`, true
	case models.StatePast:
		return ` AND b.end_date < $2`, true
	case models.StateFuture:
		return ` AND b.start_date > $2`, true
	case models.StateWaiting:
		return ` AND b.status = 'WAITING'`, false
	case models.StateRejected:
		return ` AND b.status = 'REJECTED'`, false
	default:
		return ``, false
	}
}

func (r *BookingRepo) listBookings(ctx context.Context, scope string, id int64, state models.BookingState, now time.Time) ([]models.Booking, error) {
	clause, withNow := stateClause(state)
	q := bookingSelect + `
		WHERE ` + scope + clause + `
		ORDER BY b.start_date DESC`

	args := []any{id}
	if withNow {
		args = append(args, now)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID, &b.Start, &b.End, &b.Status,
		&b.Item.ID, &b.Item.Name, &b.Item.Description, &b.Item.Available, &b.Item.OwnerID, &b.Item.RequestID,
		&b.Booker.ID, &b.Booker.Name, &b.Booker.Email,
	)
	return b, err
}
