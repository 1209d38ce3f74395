package handler

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/gateway/client"
	"shareit/services/user/helpers"
	"shareit/utils"
)

type UserGatewayHandler struct {
	client *client.UserClient
}

func NewUserGatewayHandler(c *client.UserClient) *UserGatewayHandler {
	return &UserGatewayHandler{client: c}
}

func (h *UserGatewayHandler) CreateUserHandler(c *gin.Context) {
	var req helpers.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "CreateUserHandler", err)
		return
	}
	resp, err := h.client.CreateUser(c.Request.Context(), req)
	relay(c, resp, err)
}

func (h *UserGatewayHandler) GetUserByIDHandler(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	resp, err := h.client.GetUserByID(c.Request.Context(), userID)
	relay(c, resp, err)
}

func (h *UserGatewayHandler) GetAllUsersHandler(c *gin.Context) {
	resp, err := h.client.GetAllUsers(c.Request.Context())
	relay(c, resp, err)
}

func (h *UserGatewayHandler) UpdateUserHandler(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var req helpers.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "UpdateUserHandler", err)
		return
	}
	resp, err := h.client.UpdateUser(c.Request.Context(), userID, req)
	relay(c, resp, err)
}

func (h *UserGatewayHandler) DeleteUserHandler(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	resp, err := h.client.DeleteUser(c.Request.Context(), userID)
	relay(c, resp, err)
}
