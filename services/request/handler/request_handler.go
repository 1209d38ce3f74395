package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/models"
	"shareit/services/request/helpers"
	"shareit/utils"
)

// RequestServiceInterface defines the contract the handler needs from the
// item-request service layer.
type RequestServiceInterface interface {
	CreateRequest(ctx context.Context, userID int64, description string) (models.ItemRequest, error)
	GetUserRequests(ctx context.Context, userID int64) ([]models.ItemRequest, error)
	GetAllRequests(ctx context.Context, userID int64, from, size int) ([]models.ItemRequest, error)
	GetRequestByID(ctx context.Context, userID, requestID int64) (models.ItemRequest, error)
}

type RequestHandler struct {
	service RequestServiceInterface
}

func NewRequestHandler(service RequestServiceInterface) *RequestHandler {
	return &RequestHandler{service: service}
}

func (h *RequestHandler) CreateRequestHandler(c *gin.Context) {
	userID := utils.UserID(c)

	var req helpers.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "CreateRequestHandler", err)
		return
	}

	request, err := h.service.CreateRequest(c.Request.Context(), userID, req.Description)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	utils.LogSuccess("CreateRequestHandler", "request created", map[string]any{"requestID": request.ID, "requesterID": userID})
	c.JSON(http.StatusCreated, helpers.ToItemRequestResponse(request))
}

func (h *RequestHandler) GetUserRequestsHandler(c *gin.Context) {
	userID := utils.UserID(c)

	requests, err := h.service.GetUserRequests(c.Request.Context(), userID)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, helpers.ToItemRequestResponses(requests))
}

func (h *RequestHandler) GetAllRequestsHandler(c *gin.Context) {
	userID := utils.UserID(c)
	from := queryInt(c, "from", 0)
	size := queryInt(c, "size", 10)

	requests, err := h.service.GetAllRequests(c.Request.Context(), userID, from, size)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, helpers.ToItemRequestResponses(requests))
}

func (h *RequestHandler) GetRequestByIDHandler(c *gin.Context) {
	userID := utils.UserID(c)
	requestID, ok := pathID(c, "requestId")
	if !ok {
		return
	}

	request, err := h.service.GetRequestByID(c.Request.Context(), userID, requestID)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, helpers.ToItemRequestResponse(request))
}

func queryInt(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return v
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Bad Request", "path parameter '"+name+"' must be an integer")
		return 0, false
	}
	return id, true
}
