package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/models"
	"shareit/services/item/helpers"
	"shareit/utils"
)

// ItemServiceInterface defines the contract the handler needs from the item
// service layer.
type ItemServiceInterface interface {
	CreateItem(ctx context.Context, userID int64, name, description string, available bool, requestID *int64) (models.Item, error)
	UpdateItem(ctx context.Context, userID, itemID int64, name, description *string, available *bool) (models.Item, error)
	GetItemByID(ctx context.Context, itemID int64) (models.Item, []models.Comment, error)
	GetUserItems(ctx context.Context, userID int64) ([]models.Item, error)
	SearchItems(ctx context.Context, text string) ([]models.Item, error)
	CreateComment(ctx context.Context, userID, itemID int64, text string) (models.Comment, error)
}

type ItemHandler struct {
	service ItemServiceInterface
}

func NewItemHandler(service ItemServiceInterface) *ItemHandler {
	return &ItemHandler{service: service}
}

func (h *ItemHandler) CreateItemHandler(c *gin.Context) {
	userID := utils.UserID(c)

	var req helpers.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "CreateItemHandler", err)
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), userID, req.Name, req.Description, *req.Available, req.RequestID)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	utils.LogSuccess("CreateItemHandler", "item created", map[string]any{"itemID": item.ID, "ownerID": userID})
	c.JSON(http.StatusCreated, helpers.ToItemResponse(item))
}

func (h *ItemHandler) UpdateItemHandler(c *gin.Context) {
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

	item, err := h.service.UpdateItem(c.Request.Context(), userID, itemID, req.Name, req.Description, req.Available)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	utils.LogSuccess("UpdateItemHandler", "item updated", map[string]any{"itemID": item.ID, "ownerID": userID})
	c.JSON(http.StatusOK, helpers.ToItemResponse(item))
}

func (h *ItemHandler) GetItemByIDHandler(c *gin.Context) {
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	item, comments, err := h.service.GetItemByID(c.Request.Context(), itemID)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, helpers.ToItemResponseWithComments(item, comments))
}

func (h *ItemHandler) GetUserItemsHandler(c *gin.Context) {
	userID := utils.UserID(c)

	items, err := h.service.GetUserItems(c.Request.Context(), userID)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, helpers.ToItemResponses(items))
}

func (h *ItemHandler) SearchItemsHandler(c *gin.Context) {
	text := c.Query("text")

	items, err := h.service.SearchItems(c.Request.Context(), text)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, helpers.ToItemResponses(items))
}

func (h *ItemHandler) CreateCommentHandler(c *gin.Context) {
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

	comment, err := h.service.CreateComment(c.Request.Context(), userID, itemID, req.Text)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	utils.LogSuccess("CreateCommentHandler", "comment created", map[string]any{"commentID": comment.ID, "itemID": itemID})
	c.JSON(http.StatusOK, helpers.ToCommentResponse(comment))
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Bad Request", "path parameter '"+name+"' must be an integer")
		return 0, false
	}
	return id, true
}
