package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shareit/internal/models"
	"shareit/internal/shareiterrors"
)

// UserDB defines user storage for the sharing system
type UserDB interface {
	CreateUser(ctx context.Context, u models.User) (models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, u models.User) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	EmailExists(ctx context.Context, email string) (bool, error)
}

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	const q = `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		RETURNING id`
	if err := r.db.QueryRowContext(ctx, q, u.Name, u.Email).Scan(&u.ID); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (r *UserRepo) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	const q = `
		SELECT id, name, email
		FROM users
		WHERE id = $1`
	var u models.User
	err := r.db.QueryRowContext(ctx, q, id).Scan(&u.ID, &u.Name, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("get user %d: %w", id, shareiterrors.ErrUserNotFound)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}

func (r *UserRepo) GetAllUsers(ctx context.Context) ([]models.User, error) {
	const q = `
		SELECT id, name, email
		FROM users
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepo) UpdateUser(ctx context.Context, u models.User) (models.User, error) {
	const q = `
		UPDATE users
		SET name = $2, email = $3
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, u.ID, u.Name, u.Email)
	if err != nil {
		return models.User{}, fmt.Errorf("update user %d: %w", u.ID, err)
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return models.User{}, fmt.Errorf("update user %d: %w", u.ID, shareiterrors.ErrUserNotFound)
	}
	return u, nil
}

func (r *UserRepo) DeleteUser(ctx context.Context, id int64) error {
	const q = `
		DELETE FROM users
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return fmt.Errorf("delete user %d: %w", id, shareiterrors.ErrUserNotFound)
	}
	return nil
}

func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE lower(email) = lower($1)
		)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check email %s: %w", email, err)
	}
	return exists, nil
}
