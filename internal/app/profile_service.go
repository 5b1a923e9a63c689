package app

import (
	"context"
	"log"
	"strings"
	"time"

	"devconnect/internal/domain"

	"github.com/google/uuid"
)

// ProfileService encapsulates profile and account use cases.
type ProfileService struct {
	profiles domain.ProfileRepository
	users    domain.UserRepository
	posts    domain.PostRepository
}

// NewProfileService creates a ProfileService backed by the given
// repositories. The post repository is only used for account deletion.
func NewProfileService(profiles domain.ProfileRepository, users domain.UserRepository, posts domain.PostRepository) *ProfileService {
	return &ProfileService{profiles: profiles, users: users, posts: posts}
}

// ProfileInput carries the writable profile fields. Skills is the raw
// comma-separated form field.
type ProfileInput struct {
	Status         string
	Skills         string
	Company        string
	Website        string
	Location       string
	Bio            string
	GithubUsername string
	Social         domain.SocialLinks
}

// Upsert creates the caller's profile or replaces its writable fields.
func (s *ProfileService) Upsert(ctx context.Context, userID string, in ProfileInput) (*domain.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	now := time.Now().UTC()
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &domain.Profile{
			UserID:     userID,
			Experience: []domain.Experience{},
			Education:  []domain.Education{},
			CreatedAt:  now,
		}
	}

	profile.UserName = user.Name
	profile.UserAvatar = user.Avatar
	profile.Status = in.Status
	profile.Skills = splitSkills(in.Skills)
	profile.Company = in.Company
	profile.Website = in.Website
	profile.Location = in.Location
	profile.Bio = in.Bio
	profile.GithubUsername = in.GithubUsername
	profile.Social = in.Social
	profile.UpdatedAt = now

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetMine returns the caller's own profile.
func (s *ProfileService) GetMine(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.getByUser(ctx, userID)
}

// GetByUser returns the profile of an arbitrary user. Public.
func (s *ProfileService) GetByUser(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.getByUser(ctx, userID)
}

func (s *ProfileService) getByUser(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// List returns all profiles with owner name and avatar populated.
func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles.List(ctx)
}

// AddExperience prepends a work history entry to the caller's profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID string, exp domain.Experience) (*domain.Profile, error) {
	profile, err := s.getByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	exp.ID = uuid.NewString()
	if err := s.profiles.AddExperience(ctx, userID, exp); err != nil {
		return nil, err
	}
	profile.Experience = append([]domain.Experience{exp}, profile.Experience...)
	return profile, nil
}

// RemoveExperience deletes one work history entry from the caller's
// profile. Entries only exist on the caller's own profile, so ownership is
// implied by the authenticated identity.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID string) (*domain.Profile, error) {
	removed, err := s.profiles.RemoveExperience(ctx, userID, expID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, ErrEntryNotFound
	}
	return s.getByUser(ctx, userID)
}

// AddEducation prepends a schooling entry to the caller's profile.
func (s *ProfileService) AddEducation(ctx context.Context, userID string, edu domain.Education) (*domain.Profile, error) {
	profile, err := s.getByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	edu.ID = uuid.NewString()
	if err := s.profiles.AddEducation(ctx, userID, edu); err != nil {
		return nil, err
	}
	profile.Education = append([]domain.Education{edu}, profile.Education...)
	return profile, nil
}

// RemoveEducation deletes one schooling entry from the caller's profile.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID string) (*domain.Profile, error) {
	removed, err := s.profiles.RemoveEducation(ctx, userID, eduID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, ErrEntryNotFound
	}
	return s.getByUser(ctx, userID)
}

// DeleteAccount removes the caller's posts, profile and user record, in
// that order. Each step is best-effort: a failure is logged and the
// remaining steps still run.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.posts.DeleteByUserID(ctx, userID); err != nil {
		log.Printf("delete account %s: posts: %v", userID, err)
	}
	if err := s.profiles.DeleteByUserID(ctx, userID); err != nil {
		log.Printf("delete account %s: profile: %v", userID, err)
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		log.Printf("delete account %s: user: %v", userID, err)
		return err
	}
	return nil
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}
