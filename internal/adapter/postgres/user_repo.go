package postgres

import (
	"context"
	"database/sql"
	"errors"

	"devconnect/internal/domain"
)

// GetByID retrieves a user by id.
func (d *DB) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return d.getUser(ctx, "SELECT id, name, email, password_hash, avatar, created_at FROM users WHERE id = $1", id)
}

// GetByEmail retrieves a user by email.
func (d *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return d.getUser(ctx, "SELECT id, name, email, password_hash, avatar, created_at FROM users WHERE email = $1", email)
}

func (d *DB) getUser(ctx context.Context, query, arg string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Avatar, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create creates a new user.
func (d *DB) Create(ctx context.Context, user *domain.User) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO users (id, name, email, password_hash, avatar, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		user.ID, user.Name, user.Email, user.PasswordHash, user.Avatar, user.CreatedAt,
	)
	return err
}

// Delete removes a user by id.
func (d *DB) Delete(ctx context.Context, id string) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	return err
}
