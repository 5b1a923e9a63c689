package adapthttp

import (
	"net/http"
	"time"

	"devconnect/internal/app"
	"devconnect/internal/domain"

	validation "github.com/go-ozzo/ozzo-validation"
)

const dateLayout = "2006-01-02"

type profileRequest struct {
	Status         string `json:"status"`
	Skills         string `json:"skills"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubUsername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

func (r profileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required.Error("Status is required")),
		validation.Field(&r.Skills, validation.Required.Error("Skills is required")),
	)
}

type experienceRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

func (r experienceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("Title is required")),
		validation.Field(&r.Company, validation.Required.Error("Company is required")),
		validation.Field(&r.From,
			validation.Required.Error("From Date is required"),
			validation.Date(dateLayout).Error("From Date is required")),
		validation.Field(&r.To, validation.Date(dateLayout).Error("To Date is not valid")),
	)
}

type educationRequest struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

func (r educationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.School, validation.Required.Error("School is required")),
		validation.Field(&r.Degree, validation.Required.Error("Degree is required")),
		validation.Field(&r.FieldOfStudy, validation.Required.Error("Field Of Study is required")),
		validation.Field(&r.From,
			validation.Required.Error("From Date is required"),
			validation.Date(dateLayout).Error("From Date is required")),
		validation.Field(&r.To, validation.Date(dateLayout).Error("To Date is not valid")),
	)
}

// handleMyProfile returns the caller's own profile.
func (s *Server) handleMyProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.profiles.GetMine(r.Context(), userID(r.Context()))
	if err != nil {
		respondAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// handleUpsertProfile creates or updates the caller's profile.
func (s *Server) handleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := parseJSON(r, &req); err != nil {
		writeValidationErrors(w, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationErrors(w, validationMessages(err)...)
		return
	}

	profile, err := s.profiles.Upsert(r.Context(), userID(r.Context()), app.ProfileInput{
		Status:         req.Status,
		Skills:         req.Skills,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Social: domain.SocialLinks{
			Youtube:   req.Youtube,
			Twitter:   req.Twitter,
			Facebook:  req.Facebook,
			Linkedin:  req.Linkedin,
			Instagram: req.Instagram,
		},
	})
	if err != nil {
		respondAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// handleListProfiles returns all profiles. Public.
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.profiles.List(r.Context())
	if err != nil {
		respondAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

// handleProfileByUser returns one user's profile. Public.
func (s *Server) handleProfileByUser(w http.ResponseWriter, r *http.Request) {
	profile, err := s.profiles.GetByUser(r.Context(), r.PathValue("user_id"))
	if err != nil {
		respondAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// handleDeleteAccount removes the caller's posts, profile and account.
func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := s.profiles.DeleteAccount(r.Context(), userID(r.Context())); err != nil {
		respondAppError(w, err)
		return
	}
	writeMsg(w, http.StatusOK, "user deleted")
}

func (s *Server) handleAddExperience(w http.ResponseWriter, r *http.Request) {
	var req experienceRequest
	if err := parseJSON(r, &req); err != nil {
		writeValidationErrors(w, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationErrors(w, validationMessages(err)...)
		return
	}

	from, to := parseDates(req.From, req.To)
	profile, err := s.profiles.AddExperience(r.Context(), userID(r.Context()), domain.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		respondAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleRemoveExperience(w http.ResponseWriter, r *http.Request) {
	profile, err := s.profiles.RemoveExperience(r.Context(), userID(r.Context()), r.PathValue("exp_id"))
	if err != nil {
		respondAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleAddEducation(w http.ResponseWriter, r *http.Request) {
	var req educationRequest
	if err := parseJSON(r, &req); err != nil {
		writeValidationErrors(w, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationErrors(w, validationMessages(err)...)
		return
	}

	from, to := parseDates(req.From, req.To)
	profile, err := s.profiles.AddEducation(r.Context(), userID(r.Context()), domain.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		respondAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleRemoveEducation(w http.ResponseWriter, r *http.Request) {
	profile, err := s.profiles.RemoveEducation(r.Context(), userID(r.Context()), r.PathValue("edu_id"))
	if err != nil {
		respondAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// handleGithubRepos proxies the user's five oldest repositories. Public.
func (s *Server) handleGithubRepos(w http.ResponseWriter, r *http.Request) {
	repos, err := s.github.ListRepos(r.Context(), r.PathValue("username"))
	if err != nil {
		respondAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, repos)
}

// parseDates converts validated date strings; an empty or absent "to" date
// stays nil.
func parseDates(fromRaw, toRaw string) (time.Time, *time.Time) {
	from, _ := time.Parse(dateLayout, fromRaw)
	if toRaw == "" {
		return from, nil
	}
	to, err := time.Parse(dateLayout, toRaw)
	if err != nil {
		return from, nil
	}
	return from, &to
}
