package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shareit/internal/gateway/client"
	"shareit/internal/models"
	"shareit/services/booking/helpers"
	"shareit/utils"
)

type BookingGatewayHandler struct {
	client *client.BookingClient
}

func NewBookingGatewayHandler(c *client.BookingClient) *BookingGatewayHandler {
	return &BookingGatewayHandler{client: c}
}

func (h *BookingGatewayHandler) CreateBookingHandler(c *gin.Context) {
	userID := utils.UserID(c)
	var req helpers.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "CreateBookingHandler", err)
		return
	}

	now := time.Now()
	if req.Start.Before(now) {
		utils.JSONError(c, http.StatusBadRequest, "Bad Request", "booking start must not be in the past")
		return
	}
	if !req.End.After(req.Start.Time) {
		utils.JSONError(c, http.StatusBadRequest, "Bad Request", "booking end must be after start")
		return
	}

	resp, err := h.client.CreateBooking(c.Request.Context(), userID, req)
	relay(c, resp, err)
}

func (h *BookingGatewayHandler) ApproveBookingHandler(c *gin.Context) {
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
	resp, err := h.client.ApproveBooking(c.Request.Context(), userID, bookingID, approved)
	relay(c, resp, err)
}

func (h *BookingGatewayHandler) GetBookingByIDHandler(c *gin.Context) {
	userID := utils.UserID(c)
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	resp, err := h.client.GetBookingByID(c.Request.Context(), userID, bookingID)
	relay(c, resp, err)
}

func (h *BookingGatewayHandler) GetUserBookingsHandler(c *gin.Context) {
	userID := utils.UserID(c)
	state, ok := queryState(c)
	if !ok {
		return
	}
	resp, err := h.client.GetUserBookings(c.Request.Context(), userID, state.String())
	relay(c, resp, err)
}

func (h *BookingGatewayHandler) GetOwnerBookingsHandler(c *gin.Context) {
	userID := utils.UserID(c)
	state, ok := queryState(c)
	if !ok {
		return
	}
	resp, err := h.client.GetOwnerBookings(c.Request.Context(), userID, state.String())
	relay(c, resp, err)
}

func queryState(c *gin.Context) (models.BookingState, bool) {
	state, err := models.ParseBookingState(c.DefaultQuery("state", "ALL"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Bad Request", err.Error())
		return 0, false
	}
	return state, true
}
