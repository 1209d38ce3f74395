package booking

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"shareit/internal/models"
	"shareit/internal/repository"
	"shareit/internal/shareiterrors"
)

type bookingMocks struct {
	bookings *repository.MockBookingDB
	items    *repository.MockItemDB
	users    *repository.MockUserDB
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	ctrl := gomock.NewController(t)
	m := bookingMocks{
		bookings: repository.NewMockBookingDB(ctrl),
		items:    repository.NewMockItemDB(ctrl),
		users:    repository.NewMockUserDB(ctrl),
	}
	return NewBookingService(m.bookings, m.items, m.users), m
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	future := time.Now().UTC().Add(24 * time.Hour)
	booker := models.User{ID: 4, Name: "bob", Email: "bob@example.com"}
	item := models.Item{ID: 10, Name: "drill", Available: true, OwnerID: 2}

	t.Run("success", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.users.EXPECT().GetUserByID(ctx, int64(4)).Return(booker, nil)
		m.items.EXPECT().GetItemByID(ctx, int64(10)).Return(item, nil)
		m.bookings.EXPECT().CreateBooking(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, b models.Booking) (models.Booking, error) {
				require.Equal(t, models.StatusWaiting, b.Status)
				require.Equal(t, int64(10), b.Item.ID)
				require.Equal(t, int64(4), b.Booker.ID)
				b.ID = 1
				return b, nil
			})

		created, err := svc.CreateBooking(ctx, 4, 10, future, future.Add(time.Hour))
		require.NoError(t, err)
		require.Equal(t, int64(1), created.ID)
		require.Equal(t, models.StatusWaiting, created.Status)
	})

	t.Run("start_in_past", func(t *testing.T) {
		svc, _ := newBookingService(t)
		past := time.Now().UTC().Add(-time.Hour)
		_, err := svc.CreateBooking(ctx, 4, 10, past, future)
		require.ErrorIs(t, err, shareiterrors.ErrValidation)
	})

	t.Run("end_not_after_start", func(t *testing.T) {
		svc, _ := newBookingService(t)
		_, err := svc.CreateBooking(ctx, 4, 10, future, future)
		require.ErrorIs(t, err, shareiterrors.ErrValidation)
	})

	t.Run("zero_dates", func(t *testing.T) {
		svc, _ := newBookingService(t)
		_, err := svc.CreateBooking(ctx, 4, 10, time.Time{}, time.Time{})
		require.ErrorIs(t, err, shareiterrors.ErrValidation)
	})

	t.Run("unknown_booker", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.users.EXPECT().GetUserByID(ctx, int64(99)).
			Return(models.User{}, shareiterrors.ErrUserNotFound)

		_, err := svc.CreateBooking(ctx, 99, 10, future, future.Add(time.Hour))
		require.ErrorIs(t, err, shareiterrors.ErrUserNotFound)
	})

	t.Run("item_unavailable", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.users.EXPECT().GetUserByID(ctx, int64(4)).Return(booker, nil)
		m.items.EXPECT().GetItemByID(ctx, int64(10)).
			Return(models.Item{ID: 10, Available: false, OwnerID: 2}, nil)

		_, err := svc.CreateBooking(ctx, 4, 10, future, future.Add(time.Hour))
		require.ErrorIs(t, err, shareiterrors.ErrItemUnavailable)
	})

	t.Run("owner_books_own_item_reads_as_not_found", func(t *testing.T) {
		svc, m := newBookingService(t)
		owner := models.User{ID: 2, Name: "alice"}
		m.users.EXPECT().GetUserByID(ctx, int64(2)).Return(owner, nil)
		m.items.EXPECT().GetItemByID(ctx, int64(10)).Return(item, nil)

		_, err := svc.CreateBooking(ctx, 2, 10, future, future.Add(time.Hour))
		require.ErrorIs(t, err, shareiterrors.ErrItemNotFound)
	})
}

func TestApproveBooking(t *testing.T) {
	ctx := context.Background()
	waiting := models.Booking{
		ID:     8,
		Status: models.StatusWaiting,
		Item:   models.Item{ID: 10, OwnerID: 2},
		Booker: models.User{ID: 4},
	}

	t.Run("approve", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.bookings.EXPECT().GetBookingByID(ctx, int64(8)).Return(waiting, nil)
		m.bookings.EXPECT().UpdateStatusIfWaiting(ctx, int64(8), models.StatusApproved).Return(true, nil)

		b, err := svc.ApproveBooking(ctx, 8, 2, true)
		require.NoError(t, err)
		require.Equal(t, models.StatusApproved, b.Status)
	})

	t.Run("reject", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.bookings.EXPECT().GetBookingByID(ctx, int64(8)).Return(waiting, nil)
		m.bookings.EXPECT().UpdateStatusIfWaiting(ctx, int64(8), models.StatusRejected).Return(true, nil)

		b, err := svc.ApproveBooking(ctx, 8, 2, false)
		require.NoError(t, err)
		require.Equal(t, models.StatusRejected, b.Status)
	})

	t.Run("not_the_owner", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.bookings.EXPECT().GetBookingByID(ctx, int64(8)).Return(waiting, nil)

		_, err := svc.ApproveBooking(ctx, 8, 4, true)
		require.ErrorIs(t, err, shareiterrors.ErrForbidden)
	})

	t.Run("already_decided", func(t *testing.T) {
		svc, m := newBookingService(t)
		decided := waiting
		decided.Status = models.StatusApproved
		m.bookings.EXPECT().GetBookingByID(ctx, int64(8)).Return(decided, nil)

		_, err := svc.ApproveBooking(ctx, 8, 2, true)
		require.ErrorIs(t, err, shareiterrors.ErrAlreadyProcessed)
	})

	t.Run("lost_concurrent_race", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.bookings.EXPECT().GetBookingByID(ctx, int64(8)).Return(waiting, nil)
		m.bookings.EXPECT().UpdateStatusIfWaiting(ctx, int64(8), models.StatusApproved).Return(false, nil)

		_, err := svc.ApproveBooking(ctx, 8, 2, true)
		require.ErrorIs(t, err, shareiterrors.ErrAlreadyProcessed)
	})
}

func TestGetBookingByID(t *testing.T) {
	ctx := context.Background()
	b := models.Booking{
		ID:     8,
		Status: models.StatusWaiting,
		Item:   models.Item{ID: 10, OwnerID: 2},
		Booker: models.User{ID: 4},
	}

	tests := []struct {
		name    string
		userID  int64
		wantErr error
	}{
		{name: "visible_to_booker", userID: 4},
		{name: "visible_to_owner", userID: 2},
		{name: "hidden_from_stranger", userID: 7, wantErr: shareiterrors.ErrBookingNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			m.bookings.EXPECT().GetBookingByID(ctx, int64(8)).Return(b, nil)

			got, err := svc.GetBookingByID(ctx, 8, tt.userID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, b.ID, got.ID)
		})
	}
}

func TestGetUserBookings(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown_user", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.users.EXPECT().GetUserByID(ctx, int64(99)).
			Return(models.User{}, shareiterrors.ErrUserNotFound)

		_, err := svc.GetUserBookings(ctx, 99, models.StateAll)
		require.ErrorIs(t, err, shareiterrors.ErrUserNotFound)
	})

	t.Run("forwards_state_filter", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.users.EXPECT().GetUserByID(ctx, int64(4)).Return(models.User{ID: 4}, nil)
		m.bookings.EXPECT().
			GetBookerBookings(ctx, int64(4), models.StateFuture, gomock.Any()).
			Return([]models.Booking{}, nil)

		got, err := svc.GetUserBookings(ctx, 4, models.StateFuture)
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

func TestGetOwnerBookings(t *testing.T) {
	ctx := context.Background()
	svc, m := newBookingService(t)
	m.users.EXPECT().GetUserByID(ctx, int64(2)).Return(models.User{ID: 2}, nil)
	m.bookings.EXPECT().
		GetOwnerBookings(ctx, int64(2), models.StateWaiting, gomock.Any()).
		Return([]models.Booking{{ID: 8}}, nil)

	got, err := svc.GetOwnerBookings(ctx, 2, models.StateWaiting)
	require.NoError(t, err)
	require.Len(t, got, 1)
}
