package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/models"
	"shareit/services/user/helpers"
	"shareit/utils"
)

// UserServiceInterface defines the contract the handler needs from the user
// service layer.
type UserServiceInterface interface {
	CreateUser(ctx context.Context, name, email string) (models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, userID int64, name, email *string) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type UserHandler struct {
	service UserServiceInterface
}

func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var req helpers.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "CreateUserHandler", err)
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	utils.LogSuccess("CreateUserHandler", "user created", map[string]any{"userID": user.ID})
	c.JSON(http.StatusCreated, helpers.ToUserResponse(user))
}

func (h *UserHandler) GetUserByIDHandler(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	user, err := h.service.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, helpers.ToUserResponse(user))
}

func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.service.GetAllUsers(c.Request.Context())
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, helpers.ToUserResponses(users))
}

func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var req helpers.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "UpdateUserHandler", err)
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), userID, req.Name, req.Email)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	utils.LogSuccess("UpdateUserHandler", "user updated", map[string]any{"userID": user.ID})
	c.JSON(http.StatusOK, helpers.ToUserResponse(user))
}

func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), userID); err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	utils.LogSuccess("DeleteUserHandler", "user deleted", map[string]any{"userID": userID})
	c.Status(http.StatusOK)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Bad Request", "path parameter '"+name+"' must be an integer")
		return 0, false
	}
	return id, true
}
