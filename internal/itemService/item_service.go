package item

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shareit/internal/models"
	"shareit/internal/repository"
	"shareit/internal/shareiterrors"
)

// ItemService defines the business logic for items and their comments
type ItemService struct {
	items    repository.ItemDB
	users    repository.UserDB
	comments repository.CommentDB
	bookings repository.BookingDB
}

// NewItemService creates a new ItemService instance
func NewItemService(items repository.ItemDB, users repository.UserDB, comments repository.CommentDB, bookings repository.BookingDB) *ItemService {
	return &ItemService{
		items:    items,
		users:    users,
		comments: comments,
		bookings: bookings,
	}
}

// CreateItem lists a new item owned by userID, optionally fulfilling a request
func (s *ItemService) CreateItem(ctx context.Context, userID int64, name, description string, available bool, requestID *int64) (models.Item, error) {
	owner, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to resolve owner %d: %w", userID, err)
	}

	it := models.Item{
		Name:        name,
		Description: description,
		Available:   available,
		OwnerID:     owner.ID,
		RequestID:   requestID,
	}

	created, err := s.items.CreateItem(ctx, it)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to create item for user %d: %w", userID, err)
	}
	return created, nil
}

// UpdateItem applies an owner-only partial patch; nil fields keep the stored
// value.
func (s *ItemService) UpdateItem(ctx context.Context, userID, itemID int64, name, description *string, available *bool) (models.Item, error) {
	existing, err := s.items.GetItemByID(ctx, itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to get item %d: %w", itemID, err)
	}

	if existing.OwnerID != userID {
		return models.Item{}, fmt.Errorf("service: %w - user %d does not own item %d",
			shareiterrors.ErrForbidden, userID, itemID)
	}

	if name != nil {
		existing.Name = *name
	}
	if description != nil {
		existing.Description = *description
	}
	if available != nil {
		existing.Available = *available
	}

	updated, err := s.items.UpdateItem(ctx, existing)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to update item %d: %w", itemID, err)
	}
	return updated, nil
}

// GetItemByID returns an item together with its comments
func (s *ItemService) GetItemByID(ctx context.Context, itemID int64) (models.Item, []models.Comment, error) {
	it, err := s.items.GetItemByID(ctx, itemID)
	if err != nil {
		return models.Item{}, nil, fmt.Errorf("service: failed to get item %d: %w", itemID, err)
	}

	comments, err := s.comments.GetCommentsByItem(ctx, itemID)
	if err != nil {
		return models.Item{}, nil, fmt.Errorf("service: failed to list comments for item %d: %w", itemID, err)
	}
	return it, comments, nil
}

// GetUserItems lists every item owned by the user
func (s *ItemService) GetUserItems(ctx context.Context, userID int64) ([]models.Item, error) {
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("service: failed to resolve user %d: %w", userID, err)
	}

	items, err := s.items.GetItemsByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list items for user %d: %w", userID, err)
	}
	return items, nil
}

// SearchItems returns available items whose name or description contains the
// text, case-insensitively. A blank query yields an empty result, not an
// error.
func (s *ItemService) SearchItems(ctx context.Context, text string) ([]models.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []models.Item{}, nil
	}

	items, err := s.items.SearchAvailableItems(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search items: %w", err)
	}
	return items, nil
}

// CreateComment records post-rental feedback. The author must have an
// APPROVED booking of the item that has already ended.
func (s *ItemService) CreateComment(ctx context.Context, userID, itemID int64, text string) (models.Comment, error) {
	it, err := s.items.GetItemByID(ctx, itemID)
	if err != nil {
		return models.Comment{}, fmt.Errorf("service: failed to get item %d: %w", itemID, err)
	}

	author, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return models.Comment{}, fmt.Errorf("service: failed to resolve author %d: %w", userID, err)
	}

	now := time.Now().UTC()
	completed, err := s.bookings.HasCompletedBooking(ctx, userID, itemID, now)
	if err != nil {
		return models.Comment{}, fmt.Errorf("service: failed to check bookings of item %d by user %d: %w", itemID, userID, err)
	}
	if !completed {
		return models.Comment{}, fmt.Errorf("service: %w - item %d, user %d", shareiterrors.ErrNoCompletedRental, itemID, userID)
	}

	c := models.Comment{
		Text:       text,
		ItemID:     it.ID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Created:    now,
	}

	created, err := s.comments.CreateComment(ctx, c)
	if err != nil {
		return models.Comment{}, fmt.Errorf("service: failed to create comment on item %d: %w", itemID, err)
	}
	return created, nil
}
