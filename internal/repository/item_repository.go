package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shareit/internal/models"
	"shareit/internal/shareiterrors"

	"github.com/lib/pq"
)

// ItemDB defines item storage for the sharing system
type ItemDB interface {
	CreateItem(ctx context.Context, it models.Item) (models.Item, error)
	GetItemByID(ctx context.Context, id int64) (models.Item, error)
	UpdateItem(ctx context.Context, it models.Item) (models.Item, error)
	GetItemsByOwner(ctx context.Context, ownerID int64) ([]models.Item, error)
	SearchAvailableItems(ctx context.Context, text string) ([]models.Item, error)
	GetItemsByRequestIDs(ctx context.Context, requestIDs []int64) (map[int64][]models.Item, error)
}

type ItemRepo struct {
	db *sql.DB
}

func NewItemRepo(db *sql.DB) *ItemRepo { return &ItemRepo{db: db} }

func (r *ItemRepo) CreateItem(ctx context.Context, it models.Item) (models.Item, error) {
	const q = `
		INSERT INTO items (name, description, available, owner_id, request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, q, it.Name, it.Description, it.Available, it.OwnerID, it.RequestID).
		Scan(&it.ID)
	if err != nil {
		return models.Item{}, fmt.Errorf("create item: %w", err)
	}
	return it, nil
}

func (r *ItemRepo) GetItemByID(ctx context.Context, id int64) (models.Item, error) {
	const q = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE id = $1`
	var it models.Item
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &it.RequestID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, fmt.Errorf("get item %d: %w", id, shareiterrors.ErrItemNotFound)
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("get item %d: %w", id, err)
	}
	return it, nil
}

func (r *ItemRepo) UpdateItem(ctx context.Context, it models.Item) (models.Item, error) {
	const q = `
		UPDATE items
		SET name = $2, description = $3, available = $4
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, it.ID, it.Name, it.Description, it.Available)
	if err != nil {
		return models.Item{}, fmt.Errorf("update item %d: %w", it.ID, err)
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return models.Item{}, fmt.Errorf("update item %d: %w", it.ID, shareiterrors.ErrItemNotFound)
	}
	return it, nil
}

func (r *ItemRepo) GetItemsByOwner(ctx context.Context, ownerID int64) ([]models.Item, error) {
	const q = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE owner_id = $1
		ORDER BY id`
	return r.queryItems(ctx, q, ownerID)
}

// SearchAvailableItems matches the text case-insensitively against name or
// description of available items. Blank input is handled by the service.
func (r *ItemRepo) SearchAvailableItems(ctx context.Context, text string) ([]models.Item, error) {
	const q = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE available = TRUE
		AND (name ILIKE $1 OR description ILIKE $1)
		ORDER BY id`
	return r.queryItems(ctx, q, "%"+text+"%")
}

func (r *ItemRepo) GetItemsByRequestIDs(ctx context.Context, requestIDs []int64) (map[int64][]models.Item, error) {
	if len(requestIDs) == 0 {
		return map[int64][]models.Item{}, nil
	}

	const q = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE request_id = ANY($1)
		ORDER BY id`
	items, err := r.queryItems(ctx, q, pq.Array(requestIDs))
	if err != nil {
		return nil, err
	}

	grouped := make(map[int64][]models.Item, len(requestIDs))
	for _, it := range items {
		if it.RequestID != nil {
			grouped[*it.RequestID] = append(grouped[*it.RequestID], it)
		}
	}
	return grouped, nil
}

func (r *ItemRepo) queryItems(ctx context.Context, query string, args ...any) ([]models.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &it.RequestID); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
