package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shareit/internal/models"
	"shareit/services/booking/helpers"
	"shareit/utils"
)

// BookingServiceInterface defines the contract the handler needs from the
// booking service layer.
type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, userID, itemID int64, start, end time.Time) (models.Booking, error)
	ApproveBooking(ctx context.Context, bookingID, userID int64, approved bool) (models.Booking, error)
	GetBookingByID(ctx context.Context, bookingID, userID int64) (models.Booking, error)
	GetUserBookings(ctx context.Context, userID int64, state models.BookingState) ([]models.Booking, error)
	GetOwnerBookings(ctx context.Context, userID int64, state models.BookingState) ([]models.Booking, error)
}

type BookingHandler struct {
	service BookingServiceInterface
}

func NewBookingHandler(service BookingServiceInterface) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	userID := utils.UserID(c)

	var req helpers.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "CreateBookingHandler", err)
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), userID, req.ItemID, req.Start.Time, req.End.Time)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	utils.LogSuccess("CreateBookingHandler", "booking created", map[string]any{"bookingID": booking.ID, "bookerID": userID})
	c.JSON(http.StatusCreated, helpers.ToBookingResponse(booking))
}

func (h *BookingHandler) ApproveBookingHandler(c *gin.Context) {
	userID := utils.UserID(c)
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Bad Request", "query parameter 'approved' must be a boolean")
		return
	}

	booking, err := h.service.ApproveBooking(c.Request.Context(), bookingID, userID, approved)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	utils.LogSuccess("ApproveBookingHandler", "booking decided", map[string]any{"bookingID": bookingID, "status": booking.Status})
	c.JSON(http.StatusOK, helpers.ToBookingResponse(booking))
}

func (h *BookingHandler) GetBookingByIDHandler(c *gin.Context) {
	userID := utils.UserID(c)
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}

	booking, err := h.service.GetBookingByID(c.Request.Context(), bookingID, userID)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, helpers.ToBookingResponse(booking))
}

func (h *BookingHandler) GetUserBookingsHandler(c *gin.Context) {
	userID := utils.UserID(c)
	state, ok := queryState(c)
	if !ok {
		return
	}

	bookings, err := h.service.GetUserBookings(c.Request.Context(), userID, state)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, helpers.ToBookingResponses(bookings))
}

func (h *BookingHandler) GetOwnerBookingsHandler(c *gin.Context) {
	userID := utils.UserID(c)
	state, ok := queryState(c)
	if !ok {
		return
	}

	bookings, err := h.service.GetOwnerBookings(c.Request.Context(), userID, state)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, helpers.ToBookingResponses(bookings))
}

func queryState(c *gin.Context) (models.BookingState, bool) {
	state, err := models.ParseBookingState(c.DefaultQuery("state", "ALL"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Bad Request", err.Error())
		return 0, false
	}
	return state, true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Bad Request", "path parameter '"+name+"' must be an integer")
		return 0, false
	}
	return id, true
}
