package helpers

import (
	"shareit/internal/models"
	itemhelpers "shareit/services/item/helpers"
	userhelpers "shareit/services/user/helpers"
)

// Request/Response DTOs
type BookingRequest struct {
	Start  *models.DateTime `json:"start" binding:"required"`
	End    *models.DateTime `json:"end" binding:"required"`
	ItemID int64            `json:"itemId" binding:"required"`
}

type BookingResponse struct {
	ID     int64                    `json:"id"`
	Start  models.DateTime          `json:"start"`
	End    models.DateTime          `json:"end"`
	Status models.BookingStatus     `json:"status"`
	Item   itemhelpers.ItemResponse `json:"item"`
	Booker userhelpers.UserResponse `json:"booker"`
}

func ToBookingResponse(b models.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Start:  models.NewDateTime(b.Start),
		End:    models.NewDateTime(b.End),
		Status: b.Status,
		Item:   itemhelpers.ToItemResponse(b.Item),
		Booker: userhelpers.ToUserResponse(b.Booker),
	}
}

func ToBookingResponses(bookings []models.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, ToBookingResponse(b))
	}
	return out
}
