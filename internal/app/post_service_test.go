package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"devconnect/internal/domain"
)

type mockPostRepo struct {
	createFn        func(ctx context.Context, post *domain.Post) error
	getByIDFn       func(ctx context.Context, id string) (*domain.Post, error)
	listFn          func(ctx context.Context) ([]domain.Post, error)
	deleteFn        func(ctx context.Context, id string) error
	deleteByUserFn  func(ctx context.Context, userID string) error
	addLikeFn       func(ctx context.Context, postID string, like domain.Like) error
	removeLikeFn    func(ctx context.Context, postID, userID string) error
	addCommentFn    func(ctx context.Context, postID string, comment domain.Comment) error
	removeCommentFn func(ctx context.Context, postID, commentID string) error
}

func (m *mockPostRepo) Create(ctx context.Context, post *domain.Post) error {
	if m.createFn != nil {
		return m.createFn(ctx, post)
	}
	return nil
}

func (m *mockPostRepo) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPostRepo) List(ctx context.Context) ([]domain.Post, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockPostRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockPostRepo) DeleteByUserID(ctx context.Context, userID string) error {
	if m.deleteByUserFn != nil {
		return m.deleteByUserFn(ctx, userID)
	}
	return nil
}

func (m *mockPostRepo) AddLike(ctx context.Context, postID string, like domain.Like) error {
	if m.addLikeFn != nil {
		return m.addLikeFn(ctx, postID, like)
	}
	return nil
}

func (m *mockPostRepo) RemoveLike(ctx context.Context, postID, userID string) error {
	if m.removeLikeFn != nil {
		return m.removeLikeFn(ctx, postID, userID)
	}
	return nil
}

func (m *mockPostRepo) AddComment(ctx context.Context, postID string, comment domain.Comment) error {
	if m.addCommentFn != nil {
		return m.addCommentFn(ctx, postID, comment)
	}
	return nil
}

func (m *mockPostRepo) RemoveComment(ctx context.Context, postID, commentID string) error {
	if m.removeCommentFn != nil {
		return m.removeCommentFn(ctx, postID, commentID)
	}
	return nil
}

func author(id string) *mockUserRepo {
	return &mockUserRepo{
		getByIDFn: func(ctx context.Context, uid string) (*domain.User, error) {
			if uid == id {
				return &domain.User{ID: id, Name: "A", Avatar: "http://a"}, nil
			}
			return nil, nil
		},
	}
}

func storedPost(owner string) *domain.Post {
	return &domain.Post{
		ID:        "p1",
		UserID:    owner,
		Text:      "hello",
		Name:      "A",
		CreatedAt: time.Now().UTC(),
	}
}

func TestPostService_Create(t *testing.T) {
	var saved *domain.Post
	posts := &mockPostRepo{
		createFn: func(ctx context.Context, post *domain.Post) error {
			saved = post
			return nil
		},
	}

	svc := NewPostService(posts, author("u1"))
	post, err := svc.Create(context.Background(), "u1", "hello world")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if saved == nil || saved.ID == "" {
		t.Fatal("post was not persisted with an id")
	}
	if post.Name != "A" || post.Avatar != "http://a" {
		t.Error("author fields were not denormalized onto the post")
	}
}

func TestPostService_Delete_OwnerOnly(t *testing.T) {
	deleted := false
	posts := &mockPostRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Post, error) {
			return storedPost("ownerA"), nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			deleted = true
			return nil
		},
	}
	svc := NewPostService(posts, author("ownerA"))

	// A stranger gets a denial, not a missing-post error.
	if err := svc.Delete(context.Background(), "ownerB", "p1"); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if deleted {
		t.Fatal("post deleted despite denial")
	}

	if err := svc.Delete(context.Background(), "ownerA", "p1"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if !deleted {
		t.Fatal("post was not deleted")
	}
}

func TestPostService_Delete_Missing(t *testing.T) {
	svc := NewPostService(&mockPostRepo{}, author("u1"))
	if err := svc.Delete(context.Background(), "u1", "nope"); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostService_Like_Twice(t *testing.T) {
	post := storedPost("ownerA")
	posts := &mockPostRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Post, error) {
			cp := *post
			return &cp, nil
		},
		addLikeFn: func(ctx context.Context, postID string, like domain.Like) error {
			post.Likes = append([]domain.Like{like}, post.Likes...)
			return nil
		},
	}
	svc := NewPostService(posts, author("u1"))

	likes, err := svc.Like(context.Background(), "u2", "p1")
	if err != nil {
		t.Fatalf("first like failed: %v", err)
	}
	if len(likes) != 1 || likes[0].UserID != "u2" {
		t.Fatalf("unexpected likes %+v", likes)
	}

	if _, err := svc.Like(context.Background(), "u2", "p1"); !errors.Is(err, ErrAlreadyLiked) {
		t.Errorf("expected ErrAlreadyLiked, got %v", err)
	}
	if len(post.Likes) != 1 {
		t.Errorf("liker set changed on rejected like: %+v", post.Likes)
	}
}

func TestPostService_Unlike_NotLiked(t *testing.T) {
	posts := &mockPostRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Post, error) {
			return storedPost("ownerA"), nil
		},
	}
	svc := NewPostService(posts, author("u1"))
	if _, err := svc.Unlike(context.Background(), "u2", "p1"); !errors.Is(err, ErrNotLiked) {
		t.Errorf("expected ErrNotLiked, got %v", err)
	}
}

func TestPostService_Unlike_RemovesSingleEntry(t *testing.T) {
	post := storedPost("ownerA")
	post.Likes = []domain.Like{{UserID: "u3"}, {UserID: "u2"}, {UserID: "u1"}}
	var removedUser string
	posts := &mockPostRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Post, error) {
			return post, nil
		},
		removeLikeFn: func(ctx context.Context, postID, userID string) error {
			removedUser = userID
			return nil
		},
	}
	svc := NewPostService(posts, author("u1"))

	likes, err := svc.Unlike(context.Background(), "u2", "p1")
	if err != nil {
		t.Fatalf("unlike failed: %v", err)
	}
	if removedUser != "u2" {
		t.Errorf("removed like for %q, want u2", removedUser)
	}
	if len(likes) != 2 || likes[0].UserID != "u3" || likes[1].UserID != "u1" {
		t.Errorf("unexpected remaining likes %+v", likes)
	}
}

func TestPostService_DeleteComment(t *testing.T) {
	post := storedPost("ownerA")
	post.Comments = []domain.Comment{
		{ID: "c2", UserID: "u2", Text: "second"},
		{ID: "c1", UserID: "u2", Text: "first"},
	}
	var removedID string
	posts := &mockPostRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Post, error) {
			return post, nil
		},
		removeCommentFn: func(ctx context.Context, postID, commentID string) error {
			removedID = commentID
			return nil
		},
	}
	svc := NewPostService(posts, author("u1"))

	// Deleting c1 must remove exactly c1 even though c2, by the same
	// user, sits ahead of it.
	comments, err := svc.DeleteComment(context.Background(), "u2", "p1", "c1")
	if err != nil {
		t.Fatalf("delete comment failed: %v", err)
	}
	if removedID != "c1" {
		t.Errorf("removed comment %q, want c1", removedID)
	}
	if len(comments) != 1 || comments[0].ID != "c2" {
		t.Errorf("unexpected remaining comments %+v", comments)
	}
}

func TestPostService_DeleteComment_NotOwner(t *testing.T) {
	post := storedPost("ownerA")
	post.Comments = []domain.Comment{{ID: "c1", UserID: "u2"}}
	posts := &mockPostRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Post, error) {
			return post, nil
		},
	}
	svc := NewPostService(posts, author("u1"))

	if _, err := svc.DeleteComment(context.Background(), "u9", "p1", "c1"); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
	if _, err := svc.DeleteComment(context.Background(), "u2", "p1", "missing"); !errors.Is(err, ErrCommentNotFound) {
		t.Errorf("expected ErrCommentNotFound, got %v", err)
	}
}
