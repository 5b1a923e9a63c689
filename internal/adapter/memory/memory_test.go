package memory

import (
	"context"
	"testing"
	"time"

	"devconnect/internal/domain"
)

func TestUserLifecycle(t *testing.T) {
	ctx := context.Background()
	db := New()

	u := &domain.User{ID: "u1", Name: "A", Email: "a@x.com", PasswordHash: "h"}
	if err := db.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := db.Create(ctx, &domain.User{ID: "u2", Email: "a@x.com"}); err == nil {
		t.Error("expected duplicate email error")
	}

	got, err := db.GetByEmail(ctx, "a@x.com")
	if err != nil || got == nil || got.ID != "u1" {
		t.Fatalf("GetByEmail = %+v, %v", got, err)
	}

	if err := db.Delete(ctx, "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, _ = db.GetByID(ctx, "u1")
	if got != nil {
		t.Error("user still present after delete")
	}
}

func TestProfileEntries(t *testing.T) {
	ctx := context.Background()
	db := New()
	repo := db.NewProfileRepo()

	if err := repo.Upsert(ctx, &domain.Profile{UserID: "u1", Status: "Dev"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := repo.AddExperience(ctx, "u1", domain.Experience{ID: "e1", Title: "first"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.AddExperience(ctx, "u1", domain.Experience{ID: "e2", Title: "second"}); err != nil {
		t.Fatal(err)
	}

	p, err := repo.GetByUserID(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Experience) != 2 || p.Experience[0].ID != "e2" {
		t.Errorf("expected newest-first entries, got %+v", p.Experience)
	}

	removed, err := repo.RemoveExperience(ctx, "u1", "e1")
	if err != nil || !removed {
		t.Fatalf("remove e1: %v %v", removed, err)
	}
	removed, _ = repo.RemoveExperience(ctx, "u1", "e1")
	if removed {
		t.Error("removed a missing entry")
	}

	p, _ = repo.GetByUserID(ctx, "u1")
	if len(p.Experience) != 1 || p.Experience[0].ID != "e2" {
		t.Errorf("unexpected entries after remove: %+v", p.Experience)
	}
}

func TestPostLikesAndComments(t *testing.T) {
	ctx := context.Background()
	db := New()
	repo := db.NewPostRepo()

	post := &domain.Post{ID: "p1", UserID: "u1", Text: "hi", CreatedAt: time.Now()}
	if err := repo.Create(ctx, post); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.AddLike(ctx, "p1", domain.Like{UserID: "u2"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.AddLike(ctx, "p1", domain.Like{UserID: "u3"}); err != nil {
		t.Fatal(err)
	}
	got, _ := repo.GetByID(ctx, "p1")
	if len(got.Likes) != 2 || got.Likes[0].UserID != "u3" {
		t.Errorf("expected most-recent-first likes, got %+v", got.Likes)
	}

	if err := repo.RemoveLike(ctx, "p1", "u2"); err != nil {
		t.Fatal(err)
	}
	got, _ = repo.GetByID(ctx, "p1")
	if len(got.Likes) != 1 || got.Likes[0].UserID != "u3" {
		t.Errorf("unexpected likes after remove: %+v", got.Likes)
	}

	if err := repo.AddComment(ctx, "p1", domain.Comment{ID: "c1", UserID: "u2", Text: "hey"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.RemoveComment(ctx, "p1", "c1"); err != nil {
		t.Fatal(err)
	}
	got, _ = repo.GetByID(ctx, "p1")
	if len(got.Comments) != 0 {
		t.Errorf("comment not removed: %+v", got.Comments)
	}
}

func TestListPostsNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := New()
	repo := db.NewPostRepo()

	now := time.Now()
	_ = repo.Create(ctx, &domain.Post{ID: "old", CreatedAt: now.Add(-time.Hour)})
	_ = repo.Create(ctx, &domain.Post{ID: "new", CreatedAt: now})

	posts, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 2 || posts[0].ID != "new" {
		t.Errorf("unexpected order %+v", posts)
	}
}

func TestDeleteByUserID(t *testing.T) {
	ctx := context.Background()
	db := New()
	repo := db.NewPostRepo()

	_ = repo.Create(ctx, &domain.Post{ID: "p1", UserID: "u1"})
	_ = repo.Create(ctx, &domain.Post{ID: "p2", UserID: "u2"})
	_ = repo.Create(ctx, &domain.Post{ID: "p3", UserID: "u1"})

	if err := repo.DeleteByUserID(ctx, "u1"); err != nil {
		t.Fatal(err)
	}
	posts, _ := repo.List(ctx)
	if len(posts) != 1 || posts[0].ID != "p2" {
		t.Errorf("unexpected posts %+v", posts)
	}
}
