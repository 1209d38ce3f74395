package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shareit/internal/models"
	"shareit/internal/shareiterrors"
)

// RequestDB defines item-request storage for the sharing system
type RequestDB interface {
	CreateRequest(ctx context.Context, req models.ItemRequest) (models.ItemRequest, error)
	GetRequestByID(ctx context.Context, id int64) (models.ItemRequest, error)
	GetRequestsByRequester(ctx context.Context, requesterID int64) ([]models.ItemRequest, error)
	GetOtherUsersRequests(ctx context.Context, requesterID int64, offset, limit int) ([]models.ItemRequest, error)
}

type RequestRepo struct {
	db *sql.DB
}

func NewRequestRepo(db *sql.DB) *RequestRepo { return &RequestRepo{db: db} }

func (r *RequestRepo) CreateRequest(ctx context.Context, req models.ItemRequest) (models.ItemRequest, error) {
	const q = `
		INSERT INTO requests (description, requester_id, created)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, q, req.Description, req.RequesterID, req.Created).Scan(&req.ID)
	if err != nil {
		return models.ItemRequest{}, fmt.Errorf("create request: %w", err)
	}
	return req, nil
}

func (r *RequestRepo) GetRequestByID(ctx context.Context, id int64) (models.ItemRequest, error) {
	const q = `
		SELECT id, description, requester_id, created
		FROM requests
		WHERE id = $1`
	var req models.ItemRequest
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ItemRequest{}, fmt.Errorf("get request %d: %w", id, shareiterrors.ErrRequestNotFound)
	}
	if err != nil {
		return models.ItemRequest{}, fmt.Errorf("get request %d: %w", id, err)
	}
	return req, nil
}

func (r *RequestRepo) GetRequestsByRequester(ctx context.Context, requesterID int64) ([]models.ItemRequest, error) {
	const q = `
		SELECT id, description, requester_id, created
		FROM requests
		WHERE requester_id = $1
		ORDER BY created DESC`
	return r.queryRequests(ctx, q, requesterID)
}

func (r *RequestRepo) GetOtherUsersRequests(ctx context.Context, requesterID int64, offset, limit int) ([]models.ItemRequest, error) {
	const q = `
		SELECT id, description, requester_id, created
		FROM requests
		WHERE requester_id <> $1
		ORDER BY created DESC
		OFFSET $2 LIMIT $3`
	return r.queryRequests(ctx, q, requesterID, offset, limit)
}

func (r *RequestRepo) queryRequests(ctx context.Context, query string, args ...any) ([]models.ItemRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query requests: %w", err)
	}
	defer rows.Close()

	requests := []models.ItemRequest{}
	for rows.Next() {
		var req models.ItemRequest
		if err := rows.Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
