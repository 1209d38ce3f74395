package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/gateway/client"
	"shareit/services/request/helpers"
	"shareit/utils"
)

type RequestGatewayHandler struct {
	client *client.RequestClient
}

func NewRequestGatewayHandler(c *client.RequestClient) *RequestGatewayHandler {
	return &RequestGatewayHandler{client: c}
}

func (h *RequestGatewayHandler) CreateRequestHandler(c *gin.Context) {
	userID := utils.UserID(c)
	var req helpers.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "CreateRequestHandler", err)
		return
	}
	resp, err := h.client.CreateRequest(c.Request.Context(), userID, req)
	relay(c, resp, err)
}

func (h *RequestGatewayHandler) GetUserRequestsHandler(c *gin.Context) {
	userID := utils.UserID(c)
	resp, err := h.client.GetUserRequests(c.Request.Context(), userID)
	relay(c, resp, err)
}

func (h *RequestGatewayHandler) GetAllRequestsHandler(c *gin.Context) {
	userID := utils.UserID(c)

	from, ok := queryIntDefault(c, "from", 0)
	if !ok {
		return
	}
	size, ok := queryIntDefault(c, "size", 10)
	if !ok {
		return
	}
	if from < 0 {
		utils.JSONError(c, http.StatusBadRequest, "Bad Request", "query parameter 'from' must not be negative")
		return
	}
	if size <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "Bad Request", "query parameter 'size' must be positive")
		return
	}

	resp, err := h.client.GetAllRequests(c.Request.Context(), userID, from, size)
	relay(c, resp, err)
}

func (h *RequestGatewayHandler) GetRequestByIDHandler(c *gin.Context) {
	userID := utils.UserID(c)
	requestID, ok := pathID(c, "requestId")
	if !ok {
		return
	}
	resp, err := h.client.GetRequestByID(c.Request.Context(), userID, requestID)
	relay(c, resp, err)
}

func queryIntDefault(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Bad Request", "query parameter '"+name+"' must be an integer")
		return 0, false
	}
	return v, true
}
