package handler

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/gateway/client"
	"shareit/services/item/helpers"
	"shareit/utils"
)

type ItemGatewayHandler struct {
	client *client.ItemClient
}

func NewItemGatewayHandler(c *client.ItemClient) *ItemGatewayHandler {
	return &ItemGatewayHandler{client: c}
}

func (h *ItemGatewayHandler) CreateItemHandler(c *gin.Context) {
	userID := utils.UserID(c)
	var req helpers.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "CreateItemHandler", err)
		return
	}
	resp, err := h.client.CreateItem(c.Request.Context(), userID, req)
	relay(c, resp, err)
}

func (h *ItemGatewayHandler) UpdateItemHandler(c *gin.Context) {
	userID := utils.UserID(c)
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	var req helpers.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "UpdateItemHandler", err)
		return
	}
	resp, err := h.client.UpdateItem(c.Request.Context(), userID, itemID, req)
	relay(c, resp, err)
}

func (h *ItemGatewayHandler) GetItemByIDHandler(c *gin.Context) {
	userID := utils.UserID(c)
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	resp, err := h.client.GetItemByID(c.Request.Context(), userID, itemID)
	relay(c, resp, err)
}

func (h *ItemGatewayHandler) GetUserItemsHandler(c *gin.Context) {
	userID := utils.UserID(c)
	resp, err := h.client.GetUserItems(c.Request.Context(), userID)
	relay(c, resp, err)
}

func (h *ItemGatewayHandler) SearchItemsHandler(c *gin.Context) {
	userID := utils.UserID(c)
	resp, err := h.client.SearchItems(c.Request.Context(), userID, c.Query("text"))
	relay(c, resp, err)
}

func (h *ItemGatewayHandler) CreateCommentHandler(c *gin.Context) {
	userID := utils.UserID(c)
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	var req helpers.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "CreateCommentHandler", err)
		return
	}
	resp, err := h.client.CreateComment(c.Request.Context(), userID, itemID, req)
	relay(c, resp, err)
}
