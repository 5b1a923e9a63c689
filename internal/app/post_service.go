package app

import (
	"context"
	"time"

	"devconnect/internal/domain"

	"github.com/google/uuid"
)

// PostService encapsulates post, like and comment use cases.
type PostService struct {
	posts domain.PostRepository
	users domain.UserRepository
}

// NewPostService creates a PostService backed by the given repositories.
func NewPostService(posts domain.PostRepository, users domain.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create stores a new post authored by userID, denormalizing the author's
// name and avatar onto it.
func (s *PostService) Create(ctx context.Context, userID, text string) (*domain.Post, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	post := &domain.Post{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      text,
		Name:      user.Name,
		Avatar:    user.Avatar,
		Likes:     []domain.Like{},
		Comments:  []domain.Comment{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// List returns all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

// Get returns a single post by id.
func (s *PostService) Get(ctx context.Context, postID string) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Delete removes a post. Only the author may delete it; existence is
// checked before ownership so a missing post never reads as a denial.
func (s *PostService) Delete(ctx context.Context, userID, postID string) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if !Owns(post.UserID, userID) {
		return ErrNotOwner
	}
	return s.posts.Delete(ctx, postID)
}

// Like records that userID likes the post. Any authenticated user may like
// any post, once. The check and the insert are separate store calls, so two
// concurrent likes of the same post can race; this mirrors the original
// document-splice behavior and is not guarded here.
func (s *PostService) Like(ctx context.Context, userID, postID string) ([]domain.Like, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	for _, l := range post.Likes {
		if l.UserID == userID {
			return nil, ErrAlreadyLiked
		}
	}

	like := domain.Like{UserID: userID, CreatedAt: time.Now().UTC()}
	if err := s.posts.AddLike(ctx, postID, like); err != nil {
		return nil, err
	}
	return append([]domain.Like{like}, post.Likes...), nil
}

// Unlike removes userID's like from the post.
func (s *PostService) Unlike(ctx context.Context, userID, postID string) ([]domain.Like, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	idx := -1
	for i, l := range post.Likes {
		if l.UserID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotLiked
	}

	if err := s.posts.RemoveLike(ctx, postID, userID); err != nil {
		return nil, err
	}
	return append(post.Likes[:idx:idx], post.Likes[idx+1:]...), nil
}

// AddComment attaches a comment to the post, denormalizing the commenter's
// name and avatar. Returns the post's comments, newest first.
func (s *PostService) AddComment(ctx context.Context, userID, postID, text string) ([]domain.Comment, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := domain.Comment{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      text,
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.posts.AddComment(ctx, postID, comment); err != nil {
		return nil, err
	}
	return append([]domain.Comment{comment}, post.Comments...), nil
}

// DeleteComment removes the exact comment identified by commentID after
// confirming it exists and belongs to the caller.
func (s *PostService) DeleteComment(ctx context.Context, userID, postID, commentID string) ([]domain.Comment, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	idx := -1
	for i, c := range post.Comments {
		if c.ID == commentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrCommentNotFound
	}
	if !Owns(post.Comments[idx].UserID, userID) {
		return nil, ErrNotOwner
	}

	if err := s.posts.RemoveComment(ctx, postID, commentID); err != nil {
		return nil, err
	}
	return append(post.Comments[:idx:idx], post.Comments[idx+1:]...), nil
}
