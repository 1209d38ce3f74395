package repository

import (
	"context"
	"database/sql"
	"fmt"

	"shareit/internal/models"
)

// CommentDB defines comment storage for the sharing system
type CommentDB interface {
	CreateComment(ctx context.Context, c models.Comment) (models.Comment, error)
	GetCommentsByItem(ctx context.Context, itemID int64) ([]models.Comment, error)
}

type CommentRepo struct {
	db *sql.DB
}

func NewCommentRepo(db *sql.DB) *CommentRepo { return &CommentRepo{db: db} }

func (r *CommentRepo) CreateComment(ctx context.Context, c models.Comment) (models.Comment, error) {
	const q = `
		INSERT INTO comments (text, item_id, author_id, created)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, q, c.Text, c.ItemID, c.AuthorID, c.Created).Scan(&c.ID)
	if err != nil {
		return models.Comment{}, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}

func (r *CommentRepo) GetCommentsByItem(ctx context.Context, itemID int64) ([]models.Comment, error) {
	const q = `
		SELECT c.id, c.text, c.item_id, c.author_id, u.name, c.created
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = $1
		ORDER BY c.created DESC`
	rows, err := r.db.QueryContext(ctx, q, itemID)
	if err != nil {
		return nil, fmt.Errorf("list comments for item %d: %w", itemID, err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.Created); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
