package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"devconnect/internal/domain"
	"devconnect/internal/token"

	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	getByIDFn    func(ctx context.Context, id string) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	createFn     func(ctx context.Context, user *domain.User) error
	deleteFn     func(ctx context.Context, id string) error
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func testCodec() *token.Codec {
	return token.NewCodec([]byte("test-secret"), time.Hour)
}

func TestAuthService_Register_Success(t *testing.T) {
	ctx := context.Background()

	var created *domain.User
	users := &mockUserRepo{
		createFn: func(ctx context.Context, user *domain.User) error {
			created = user
			return nil
		},
	}

	svc := NewAuthService(users, testCodec())
	tok, err := svc.Register(ctx, "A", "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if tok == "" {
		t.Error("expected token, got empty string")
	}
	if created == nil {
		t.Fatal("user was not persisted")
	}
	if created.ID == "" {
		t.Error("expected generated id")
	}
	if created.PasswordHash == "secret1" || created.PasswordHash == "" {
		t.Error("password was not hashed")
	}
	if !strings.HasPrefix(created.Avatar, "https://www.gravatar.com/avatar/") {
		t.Errorf("unexpected avatar %q", created.Avatar)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "u1", Email: email}, nil
		},
	}

	svc := NewAuthService(users, testCodec())
	if _, err := svc.Register(context.Background(), "A", "a@x.com", "secret1"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	password := "testpass123"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "u1", Email: email, PasswordHash: string(hash)}, nil
		},
	}

	codec := testCodec()
	svc := NewAuthService(users, codec)
	tok, err := svc.Login(context.Background(), "a@x.com", password)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	id, err := codec.Verify(tok)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if id != "u1" {
		t.Errorf("token subject = %q, want u1", id)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "u1", PasswordHash: string(hash)}, nil
		},
	}

	svc := NewAuthService(users, testCodec())
	if _, err := svc.Login(context.Background(), "a@x.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, testCodec())
	if _, err := svc.Login(context.Background(), "nobody@x.com", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_CurrentUser_NotFound(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, testCodec())
	if _, err := svc.CurrentUser(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGravatarURL_Normalizes(t *testing.T) {
	a := gravatarURL("A@X.com ")
	b := gravatarURL("a@x.com")
	if a != b {
		t.Errorf("expected identical URLs, got %q and %q", a, b)
	}
}
