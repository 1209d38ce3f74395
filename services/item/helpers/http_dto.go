package helpers

import "shareit/internal/models"

// Request/Response DTOs
type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId"`
}

// UpdateItemRequest carries a partial patch; absent fields keep the stored
// value.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type CommentResponse struct {
	ID         int64           `json:"id"`
	Text       string          `json:"text"`
	ItemID     int64           `json:"itemId"`
	AuthorName string          `json:"authorName"`
	Created    models.DateTime `json:"created"`
}

// BookingWindow is the shape of the lastBooking/nextBooking annotations on
// the item detail. The annotations are not computed anywhere yet, so the
// fields always serialize as null.
type BookingWindow struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

type ItemResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	RequestID   *int64            `json:"requestId"`
	Comments    []CommentResponse `json:"comments,omitempty"`
	LastBooking *BookingWindow    `json:"lastBooking"`
	NextBooking *BookingWindow    `json:"nextBooking"`
}

func ToItemResponse(it models.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

func ToItemResponses(items []models.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ToItemResponse(it))
	}
	return out
}

func ToItemResponseWithComments(it models.Item, comments []models.Comment) ItemResponse {
	resp := ToItemResponse(it)
	resp.Comments = ToCommentResponses(comments)
	return resp
}

func ToCommentResponse(c models.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		ItemID:     c.ItemID,
		AuthorName: c.AuthorName,
		Created:    models.NewDateTime(c.Created),
	}
}

func ToCommentResponses(comments []models.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, ToCommentResponse(c))
	}
	return out
}
