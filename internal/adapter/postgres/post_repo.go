package postgres

import (
	"context"
	"database/sql"
	"errors"

	"devconnect/internal/domain"
)

// PostRepo implements post repository operations on DB.
type PostRepo struct {
	db *DB
}

// NewPostRepo wraps a DB as a PostRepository.
func NewPostRepo(db *DB) *PostRepo {
	return &PostRepo{db: db}
}

// Create stores a new post.
func (r *PostRepo) Create(ctx context.Context, p *domain.Post) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO posts (id, user_id, text, name, avatar, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		p.ID, p.UserID, p.Text, p.Name, p.Avatar, p.CreatedAt,
	)
	return err
}

// GetByID retrieves a post with likes and comments, both newest first.
func (r *PostRepo) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	var p domain.Post
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT id, user_id, text, name, avatar, created_at FROM posts WHERE id = $1", id).
		Scan(&p.ID, &p.UserID, &p.Text, &p.Name, &p.Avatar, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if p.Likes, err = r.listLikes(ctx, id); err != nil {
		return nil, err
	}
	if p.Comments, err = r.listComments(ctx, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all posts, newest first, with likes and comments populated.
func (r *PostRepo) List(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT id, user_id, text, name, avatar, created_at FROM posts ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Text, &p.Name, &p.Avatar, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].Likes, err = r.listLikes(ctx, out[i].ID); err != nil {
			return nil, err
		}
		if out[i].Comments, err = r.listComments(ctx, out[i].ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Delete removes a post and its likes and comments.
func (r *PostRepo) Delete(ctx context.Context, id string) error {
	for _, stmt := range []string{
		"DELETE FROM post_likes WHERE post_id = $1",
		"DELETE FROM post_comments WHERE post_id = $1",
		"DELETE FROM posts WHERE id = $1",
	} {
		if _, err := r.db.sql.ExecContext(ctx, stmt, id); err != nil {
			return err
		}
	}
	return nil
}

// DeleteByUserID removes all posts authored by the user.
func (r *PostRepo) DeleteByUserID(ctx context.Context, userID string) error {
	for _, stmt := range []string{
		"DELETE FROM post_likes WHERE post_id IN (SELECT id FROM posts WHERE user_id = $1)",
		"DELETE FROM post_comments WHERE post_id IN (SELECT id FROM posts WHERE user_id = $1)",
		"DELETE FROM posts WHERE user_id = $1",
	} {
		if _, err := r.db.sql.ExecContext(ctx, stmt, userID); err != nil {
			return err
		}
	}
	return nil
}

// AddLike records a like on the post.
func (r *PostRepo) AddLike(ctx context.Context, postID string, like domain.Like) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO post_likes (post_id, user_id, created_at) VALUES ($1, $2, $3)",
		postID, like.UserID, like.CreatedAt,
	)
	return err
}

// RemoveLike deletes the user's like from the post.
func (r *PostRepo) RemoveLike(ctx context.Context, postID, userID string) error {
	_, err := r.db.sql.ExecContext(ctx,
		"DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2", postID, userID)
	return err
}

// AddComment stores a comment on the post.
func (r *PostRepo) AddComment(ctx context.Context, postID string, c domain.Comment) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO post_comments (id, post_id, user_id, text, name, avatar, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		c.ID, postID, c.UserID, c.Text, c.Name, c.Avatar, c.CreatedAt,
	)
	return err
}

// RemoveComment deletes one comment from the post.
func (r *PostRepo) RemoveComment(ctx context.Context, postID, commentID string) error {
	_, err := r.db.sql.ExecContext(ctx,
		"DELETE FROM post_comments WHERE id = $1 AND post_id = $2", commentID, postID)
	return err
}

func (r *PostRepo) listLikes(ctx context.Context, postID string) ([]domain.Like, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT user_id, created_at FROM post_likes WHERE post_id = $1 ORDER BY created_at DESC", postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Like{}
	for rows.Next() {
		var l domain.Like
		if err := rows.Scan(&l.UserID, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *PostRepo) listComments(ctx context.Context, postID string) ([]domain.Comment, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT id, user_id, text, name, avatar, created_at FROM post_comments WHERE post_id = $1 ORDER BY created_at DESC", postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.UserID, &c.Text, &c.Name, &c.Avatar, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
