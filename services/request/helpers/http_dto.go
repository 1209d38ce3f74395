package helpers

import (
	"shareit/internal/models"
	itemhelpers "shareit/services/item/helpers"
)

// Request/Response DTOs
type CreateRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

type ItemRequestResponse struct {
	ID          int64                      `json:"id"`
	Description string                     `json:"description"`
	RequesterID int64                      `json:"requesterId"`
	Created     models.DateTime            `json:"created"`
	Items       []itemhelpers.ItemResponse `json:"items"`
}

func ToItemRequestResponse(req models.ItemRequest) ItemRequestResponse {
	return ItemRequestResponse{
		ID:          req.ID,
		Description: req.Description,
		RequesterID: req.RequesterID,
		Created:     models.NewDateTime(req.Created),
		Items:       itemhelpers.ToItemResponses(req.Items),
	}
}

func ToItemRequestResponses(requests []models.ItemRequest) []ItemRequestResponse {
	out := make([]ItemRequestResponse, 0, len(requests))
	for _, req := range requests {
		out = append(out, ToItemRequestResponse(req))
	}
	return out
}
