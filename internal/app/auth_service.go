// Package app holds the application services and business logic.
package app

import (
	"context"
	"crypto/md5"
	"fmt"
	"strings"
	"time"

	"devconnect/internal/domain"
	"devconnect/internal/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and identity lookups.
type AuthService struct {
	users  domain.UserRepository
	tokens *token.Codec
}

// NewAuthService creates an AuthService backed by the given repository and
// token codec.
func NewAuthService(users domain.UserRepository, tokens *token.Codec) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a user with a derived avatar and returns a bearer token
// for the new account.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Avatar:       gravatarURL(email),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	return s.tokens.Issue(user.ID)
}

// Login checks the email and password against the stored hash and issues a
// token on match.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(user.ID)
}

// CurrentUser returns the user bound to an authenticated request. The
// password hash never serializes (see domain.User json tags).
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// gravatarURL derives the avatar URL from an email address the way the
// gravatar service expects: md5 of the trimmed, lower-cased address.
func gravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", sum)
}
