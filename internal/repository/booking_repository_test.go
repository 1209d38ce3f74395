package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"shareit/internal/models"
	"shareit/internal/shareiterrors"
)

func newBookingMock(t *testing.T) (*BookingRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewBookingRepo(db), mock
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "start_date", "end_date", "status",
		"item_id", "item_name", "item_description", "item_available", "item_owner_id", "item_request_id",
		"booker_id", "booker_name", "booker_email",
	})
}

func TestBookingRepoGetBookingByID(t *testing.T) {
	repo, mock := newBookingMock(t)

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(`JOIN items i ON i.id = b.item_id`)).
		WithArgs(int64(3)).
		WillReturnRows(bookingRows().AddRow(
			int64(3), start, end, "WAITING",
			int64(10), "drill", "a power drill", true, int64(2), nil,
			int64(4), "bob", "bob@example.com",
		))

	b, err := repo.GetBookingByID(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, models.StatusWaiting, b.Status)
	require.Equal(t, int64(10), b.Item.ID)
	require.Equal(t, int64(2), b.Item.OwnerID)
	require.Equal(t, "bob", b.Booker.Name)
	require.Nil(t, b.Item.RequestID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepoGetBookingByIDNotFound(t *testing.T) {
	repo, mock := newBookingMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`JOIN items i ON i.id = b.item_id`)).
		WithArgs(int64(404)).
		WillReturnRows(bookingRows())

	_, err := repo.GetBookingByID(context.Background(), 404)
	require.ErrorIs(t, err, shareiterrors.ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepoUpdateStatusIfWaiting(t *testing.T) {
	tests := []struct {
		name        string
		rows        int64
		wantApplied bool
	}{
		{name: "transition_applied", rows: 1, wantApplied: true},
		{name: "already_processed", rows: 0, wantApplied: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newBookingMock(t)
			mock.ExpectExec(regexp.QuoteMeta(`AND status = 'WAITING'`)).
				WithArgs(int64(8), "APPROVED").
				WillReturnResult(sqlmock.NewResult(0, tt.rows))

			applied, err := repo.UpdateStatusIfWaiting(context.Background(), 8, models.StatusApproved)
			require.NoError(t, err)
			require.Equal(t, tt.wantApplied, applied)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// The CURRENT/PAST/FUTURE filters carry the evaluation instant as a second
// query parameter; the status filters and ALL do not.
func TestBookingRepoListStateFilters(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		state    models.BookingState
		fragment string
		withNow  bool
	}{
		{name: "all", state: models.StateAll, fragment: `ORDER BY b.start_date DESC`},
		{name: "current", state: models.StateCurrent, fragment: `AND b.start_date <= $2 AND b.end_date > $2`, withNow: true},
		{name: "past", state: models.StatePast, fragment: `AND b.end_date < $2`, withNow: true},
		{name: "future", state: models.StateFuture, fragment: `AND b.start_date > $2`, withNow: true},
		{name: "waiting", state: models.StateWaiting, fragment: `AND b.status = 'WAITING'`},
		{name: "rejected", state: models.StateRejected, fragment: `AND b.status = 'REJECTED'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newBookingMock(t)

			expect := mock.ExpectQuery(regexp.QuoteMeta(tt.fragment))
			if tt.withNow {
				expect.WithArgs(int64(4), now).WillReturnRows(bookingRows())
			} else {
				expect.WithArgs(int64(4)).WillReturnRows(bookingRows())
			}

			got, err := repo.GetBookerBookings(context.Background(), 4, tt.state, now)
			require.NoError(t, err)
			require.NotNil(t, got)
			require.Empty(t, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingRepoOwnerScope(t *testing.T) {
	repo, mock := newBookingMock(t)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE i.owner_id = $1`)).
		WithArgs(int64(2)).
		WillReturnRows(bookingRows())

	_, err := repo.GetOwnerBookings(context.Background(), 2, models.StateAll, now)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepoHasCompletedBooking(t *testing.T) {
	repo, mock := newBookingMock(t)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`AND status = 'APPROVED'`)).
		WithArgs(int64(4), int64(10), now).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.HasCompletedBooking(context.Background(), 4, 10, now)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}
