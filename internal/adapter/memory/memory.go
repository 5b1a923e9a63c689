// Package memory implements the domain repositories in memory for
// development and testing.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"devconnect/internal/domain"
)

// DB implements an in-memory database storage. It acts as the user
// repository directly; profile and post repositories wrap it.
type DB struct {
	mu       sync.Mutex
	users    []*domain.User
	profiles map[string]*domain.Profile
	posts    []*domain.Post
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		profiles: make(map[string]*domain.Profile),
	}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.ProfileRepository = (*ProfileRepo)(nil)
var _ domain.PostRepository = (*PostRepo)(nil)

// --- UserRepository ---

// GetByID retrieves a user by id.
func (db *DB) GetByID(ctx context.Context, id string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByEmail retrieves a user by email.
func (db *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Create stores a new user.
func (db *DB) Create(ctx context.Context, user *domain.User) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == user.Email {
			return errors.New("user already exists")
		}
	}
	cp := *user
	db.users = append(db.users, &cp)
	return nil
}

// Delete removes a user by id.
func (db *DB) Delete(ctx context.Context, id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, u := range db.users {
		if u.ID == id {
			db.users = append(db.users[:i], db.users[i+1:]...)
			return nil
		}
	}
	return nil
}

// --- ProfileRepository ---

// ProfileRepo implements profile persistence on DB.
type ProfileRepo struct {
	db *DB
}

// NewProfileRepo wraps the DB as a ProfileRepository.
func (db *DB) NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{db: db}
}

// GetByUserID retrieves a profile by the owning user's id.
func (r *ProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p, ok := r.db.profiles[userID]
	if !ok {
		return nil, nil
	}
	return copyProfile(p), nil
}

// List returns all profiles, newest first.
func (r *ProfileRepo) List(ctx context.Context) ([]domain.Profile, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Profile, 0, len(r.db.profiles))
	for _, p := range r.db.profiles {
		out = append(out, *copyProfile(p))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Upsert creates or replaces a profile.
func (r *ProfileRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.profiles[profile.UserID] = copyProfile(profile)
	return nil
}

// DeleteByUserID removes a profile.
func (r *ProfileRepo) DeleteByUserID(ctx context.Context, userID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.profiles, userID)
	return nil
}

// AddExperience prepends an experience entry to the user's profile.
func (r *ProfileRepo) AddExperience(ctx context.Context, userID string, exp domain.Experience) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p, ok := r.db.profiles[userID]
	if !ok {
		return errors.New("profile not found")
	}
	p.Experience = append([]domain.Experience{exp}, p.Experience...)
	return nil
}

// RemoveExperience removes an experience entry by id.
func (r *ProfileRepo) RemoveExperience(ctx context.Context, userID, expID string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p, ok := r.db.profiles[userID]
	if !ok {
		return false, nil
	}
	for i, e := range p.Experience {
		if e.ID == expID {
			p.Experience = append(p.Experience[:i], p.Experience[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// AddEducation prepends an education entry to the user's profile.
func (r *ProfileRepo) AddEducation(ctx context.Context, userID string, edu domain.Education) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p, ok := r.db.profiles[userID]
	if !ok {
		return errors.New("profile not found")
	}
	p.Education = append([]domain.Education{edu}, p.Education...)
	return nil
}

// RemoveEducation removes an education entry by id.
func (r *ProfileRepo) RemoveEducation(ctx context.Context, userID, eduID string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p, ok := r.db.profiles[userID]
	if !ok {
		return false, nil
	}
	for i, e := range p.Education {
		if e.ID == eduID {
			p.Education = append(p.Education[:i], p.Education[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- PostRepository ---

// PostRepo implements post persistence on DB.
type PostRepo struct {
	db *DB
}

// NewPostRepo wraps the DB as a PostRepository.
func (db *DB) NewPostRepo() *PostRepo {
	return &PostRepo{db: db}
}

// Create stores a new post.
func (r *PostRepo) Create(ctx context.Context, post *domain.Post) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.posts = append(r.db.posts, copyPost(post))
	return nil
}

// GetByID retrieves a post by id.
func (r *PostRepo) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if p := r.db.findPost(id); p != nil {
		return copyPost(p), nil
	}
	return nil, nil
}

// List returns all posts, newest first.
func (r *PostRepo) List(ctx context.Context) ([]domain.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Post, 0, len(r.db.posts))
	for _, p := range r.db.posts {
		out = append(out, *copyPost(p))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a post by id.
func (r *PostRepo) Delete(ctx context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, p := range r.db.posts {
		if p.ID == id {
			r.db.posts = append(r.db.posts[:i], r.db.posts[i+1:]...)
			return nil
		}
	}
	return nil
}

// DeleteByUserID removes all posts authored by the user.
func (r *PostRepo) DeleteByUserID(ctx context.Context, userID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	kept := r.db.posts[:0]
	for _, p := range r.db.posts {
		if p.UserID != userID {
			kept = append(kept, p)
		}
	}
	r.db.posts = kept
	return nil
}

// AddLike prepends a like to the post.
func (r *PostRepo) AddLike(ctx context.Context, postID string, like domain.Like) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p := r.db.findPost(postID)
	if p == nil {
		return errors.New("post not found")
	}
	p.Likes = append([]domain.Like{like}, p.Likes...)
	return nil
}

// RemoveLike removes the user's like from the post.
func (r *PostRepo) RemoveLike(ctx context.Context, postID, userID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p := r.db.findPost(postID)
	if p == nil {
		return errors.New("post not found")
	}
	for i, l := range p.Likes {
		if l.UserID == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return nil
		}
	}
	return nil
}

// AddComment prepends a comment to the post.
func (r *PostRepo) AddComment(ctx context.Context, postID string, comment domain.Comment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p := r.db.findPost(postID)
	if p == nil {
		return errors.New("post not found")
	}
	p.Comments = append([]domain.Comment{comment}, p.Comments...)
	return nil
}

// RemoveComment removes the comment with the given id from the post.
func (r *PostRepo) RemoveComment(ctx context.Context, postID, commentID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p := r.db.findPost(postID)
	if p == nil {
		return errors.New("post not found")
	}
	for i, c := range p.Comments {
		if c.ID == commentID {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return nil
		}
	}
	return nil
}

func (db *DB) findPost(id string) *domain.Post {
	for _, p := range db.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func copyProfile(p *domain.Profile) *domain.Profile {
	cp := *p
	cp.Skills = append([]string(nil), p.Skills...)
	cp.Experience = append([]domain.Experience{}, p.Experience...)
	cp.Education = append([]domain.Education{}, p.Education...)
	return &cp
}

func copyPost(p *domain.Post) *domain.Post {
	cp := *p
	cp.Likes = append([]domain.Like{}, p.Likes...)
	cp.Comments = append([]domain.Comment{}, p.Comments...)
	return &cp
}
