package request

import (
	"context"
	"fmt"
	"time"

	"shareit/internal/models"
	"shareit/internal/repository"
)

// Paging defaults for the "all requests" listing; unparsable or negative
// inputs fall back to these instead of reaching the query.
const (
	defaultFrom = 0
	defaultSize = 10
)

// RequestService defines the business logic for item requests
type RequestService struct {
	requests repository.RequestDB
	items    repository.ItemDB
	users    repository.UserDB
}

// NewRequestService creates a new RequestService instance
func NewRequestService(requests repository.RequestDB, items repository.ItemDB, users repository.UserDB) *RequestService {
	return &RequestService{
		requests: requests,
		items:    items,
		users:    users,
	}
}

// CreateRequest records a new item request stamped with the server time
func (s *RequestService) CreateRequest(ctx context.Context, userID int64, description string) (models.ItemRequest, error) {
	requester, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return models.ItemRequest{}, fmt.Errorf("service: failed to resolve requester %d: %w", userID, err)
	}

	req := models.ItemRequest{
		Description: description,
		RequesterID: requester.ID,
		Created:     time.Now().UTC(),
	}

	created, err := s.requests.CreateRequest(ctx, req)
	if err != nil {
		return models.ItemRequest{}, fmt.Errorf("service: failed to create request for user %d: %w", userID, err)
	}
	created.Items = []models.Item{}
	return created, nil
}

// GetUserRequests lists the user's own requests, newest first, each
// annotated with the items created to fulfil it.
func (s *RequestService) GetUserRequests(ctx context.Context, userID int64) ([]models.ItemRequest, error) {
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("service: failed to resolve user %d: %w", userID, err)
	}

	requests, err := s.requests.GetRequestsByRequester(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list requests for user %d: %w", userID, err)
	}

	if err := s.attachItems(ctx, requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// GetAllRequests pages through other users' requests, newest first
func (s *RequestService) GetAllRequests(ctx context.Context, userID int64, from, size int) ([]models.ItemRequest, error) {
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("service: failed to resolve user %d: %w", userID, err)
	}

	if from < 0 {
		from = defaultFrom
	}
	if size <= 0 {
		size = defaultSize
	}

	requests, err := s.requests.GetOtherUsersRequests(ctx, userID, from, size)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list requests for user %d: %w", userID, err)
	}

	if err := s.attachItems(ctx, requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// GetRequestByID returns one request with its fulfilling items attached
func (s *RequestService) GetRequestByID(ctx context.Context, userID, requestID int64) (models.ItemRequest, error) {
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return models.ItemRequest{}, fmt.Errorf("service: failed to resolve user %d: %w", userID, err)
	}

	req, err := s.requests.GetRequestByID(ctx, requestID)
	if err != nil {
		return models.ItemRequest{}, fmt.Errorf("service: failed to get request %d: %w", requestID, err)
	}

	requests := []models.ItemRequest{req}
	if err := s.attachItems(ctx, requests); err != nil {
		return models.ItemRequest{}, err
	}
	return requests[0], nil
}

// attachItems resolves the fulfilling items for every request in one query.
// Items is always non-nil afterwards, empty when nothing fulfils a request.
func (s *RequestService) attachItems(ctx context.Context, requests []models.ItemRequest) error {
	if len(requests) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(requests))
	for _, req := range requests {
		ids = append(ids, req.ID)
	}

	grouped, err := s.items.GetItemsByRequestIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("service: failed to load items for requests: %w", err)
	}

	for i := range requests {
		items := grouped[requests[i].ID]
		if items == nil {
			items = []models.Item{}
		}
		requests[i].Items = items
	}
	return nil
}
