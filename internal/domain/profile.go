package domain

import (
	"context"
	"time"
)

// Profile is a user's public profile. Each user has at most one.
type Profile struct {
	UserID         string       `json:"userId"`
	UserName       string       `json:"userName"`
	UserAvatar     string       `json:"userAvatar"`
	Status         string       `json:"status"`
	Skills         []string     `json:"skills"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	GithubUsername string       `json:"githubUsername,omitempty"`
	Social         SocialLinks  `json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// SocialLinks holds optional links to external profiles.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Experience is a work history entry on a profile.
type Experience struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

// Education is a schooling entry on a profile.
type Education struct {
	ID           string     `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldOfStudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// ProfileRepository is the port for profile persistence. Experience and
// education entries belong to exactly one profile and are addressed through
// the owning user's id.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	List(ctx context.Context) ([]Profile, error)
	Upsert(ctx context.Context, profile *Profile) error
	DeleteByUserID(ctx context.Context, userID string) error

	AddExperience(ctx context.Context, userID string, exp Experience) error
	RemoveExperience(ctx context.Context, userID, expID string) (bool, error)
	AddEducation(ctx context.Context, userID string, edu Education) error
	RemoveEducation(ctx context.Context, userID, eduID string) (bool, error)
}
