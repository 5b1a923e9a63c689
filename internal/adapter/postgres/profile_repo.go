package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"devconnect/internal/domain"

	"github.com/lib/pq"
)

// ProfileRepo implements profile repository operations on DB.
type ProfileRepo struct {
	db *DB
}

// NewProfileRepo wraps a DB as a ProfileRepository.
func NewProfileRepo(db *DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

const profileColumns = `p.user_id, u.name, u.avatar, p.status, p.skills, p.company, p.website,
	p.location, p.bio, p.github_username, p.youtube, p.twitter, p.facebook,
	p.linkedin, p.instagram, p.created_at, p.updated_at`

// GetByUserID retrieves a profile, with experience and education entries,
// by the owning user's id.
func (r *ProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	row := r.db.sql.QueryRowContext(ctx,
		"SELECT "+profileColumns+" FROM profiles p JOIN users u ON u.id = p.user_id WHERE p.user_id = $1",
		userID,
	)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if p.Experience, err = r.listExperience(ctx, userID); err != nil {
		return nil, err
	}
	if p.Education, err = r.listEducation(ctx, userID); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all profiles with owner name and avatar, newest first.
// Experience and education entries are not loaded for listings.
func (r *ProfileRepo) List(ctx context.Context) ([]domain.Profile, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT "+profileColumns+" FROM profiles p JOIN users u ON u.id = p.user_id ORDER BY p.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// Upsert creates or replaces the writable profile fields.
func (r *ProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	_, err := r.db.sql.ExecContext(ctx, `
		INSERT INTO profiles (user_id, status, skills, company, website, location, bio,
			github_username, youtube, twitter, facebook, linkedin, instagram, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (user_id) DO UPDATE SET
			status = EXCLUDED.status, skills = EXCLUDED.skills, company = EXCLUDED.company,
			website = EXCLUDED.website, location = EXCLUDED.location, bio = EXCLUDED.bio,
			github_username = EXCLUDED.github_username, youtube = EXCLUDED.youtube,
			twitter = EXCLUDED.twitter, facebook = EXCLUDED.facebook,
			linkedin = EXCLUDED.linkedin, instagram = EXCLUDED.instagram,
			updated_at = EXCLUDED.updated_at`,
		p.UserID, p.Status, pq.Array(p.Skills), p.Company, p.Website, p.Location, p.Bio,
		p.GithubUsername, p.Social.Youtube, p.Social.Twitter, p.Social.Facebook,
		p.Social.Linkedin, p.Social.Instagram, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// DeleteByUserID removes a profile and its entries.
func (r *ProfileRepo) DeleteByUserID(ctx context.Context, userID string) error {
	for _, stmt := range []string{
		"DELETE FROM experiences WHERE user_id = $1",
		"DELETE FROM educations WHERE user_id = $1",
		"DELETE FROM profiles WHERE user_id = $1",
	} {
		if _, err := r.db.sql.ExecContext(ctx, stmt, userID); err != nil {
			return err
		}
	}
	return nil
}

// AddExperience stores a new experience entry.
func (r *ProfileRepo) AddExperience(ctx context.Context, userID string, e domain.Experience) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO experiences (id, user_id, title, company, location, from_date, to_date, current, description, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)",
		e.ID, userID, e.Title, e.Company, e.Location, e.From, e.To, e.Current, e.Description, time.Now().UTC(),
	)
	return err
}

// RemoveExperience deletes one experience entry owned by the user.
func (r *ProfileRepo) RemoveExperience(ctx context.Context, userID, expID string) (bool, error) {
	res, err := r.db.sql.ExecContext(ctx,
		"DELETE FROM experiences WHERE id = $1 AND user_id = $2", expID, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// AddEducation stores a new education entry.
func (r *ProfileRepo) AddEducation(ctx context.Context, userID string, e domain.Education) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO educations (id, user_id, school, degree, field_of_study, from_date, to_date, current, description, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)",
		e.ID, userID, e.School, e.Degree, e.FieldOfStudy, e.From, e.To, e.Current, e.Description, time.Now().UTC(),
	)
	return err
}

// RemoveEducation deletes one education entry owned by the user.
func (r *ProfileRepo) RemoveEducation(ctx context.Context, userID, eduID string) (bool, error) {
	res, err := r.db.sql.ExecContext(ctx,
		"DELETE FROM educations WHERE id = $1 AND user_id = $2", eduID, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *ProfileRepo) listExperience(ctx context.Context, userID string) ([]domain.Experience, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT id, title, company, location, from_date, to_date, current, description FROM experiences WHERE user_id = $1 ORDER BY created_at DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Experience{}
	for rows.Next() {
		var e domain.Experience
		var to sql.NullTime
		if err := rows.Scan(&e.ID, &e.Title, &e.Company, &e.Location, &e.From, &to, &e.Current, &e.Description); err != nil {
			return nil, err
		}
		if to.Valid {
			e.To = &to.Time
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *ProfileRepo) listEducation(ctx context.Context, userID string) ([]domain.Education, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT id, school, degree, field_of_study, from_date, to_date, current, description FROM educations WHERE user_id = $1 ORDER BY created_at DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Education{}
	for rows.Next() {
		var e domain.Education
		var to sql.NullTime
		if err := rows.Scan(&e.ID, &e.School, &e.Degree, &e.FieldOfStudy, &e.From, &to, &e.Current, &e.Description); err != nil {
			return nil, err
		}
		if to.Valid {
			e.To = &to.Time
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	var skills pq.StringArray
	err := row.Scan(&p.UserID, &p.UserName, &p.UserAvatar, &p.Status, &skills,
		&p.Company, &p.Website, &p.Location, &p.Bio, &p.GithubUsername,
		&p.Social.Youtube, &p.Social.Twitter, &p.Social.Facebook,
		&p.Social.Linkedin, &p.Social.Instagram, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Skills = []string(skills)
	p.Experience = []domain.Experience{}
	p.Education = []domain.Education{}
	return &p, nil
}
