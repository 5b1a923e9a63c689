// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r registerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("Please enter a Name")),
		validation.Field(&r.Email,
			validation.Required.Error("Valid email address is required"),
			is.Email.Error("Valid email address is required")),
		validation.Field(&r.Password,
			validation.Required.Error("Please enter a password of minimum 6 length"),
			validation.Length(6, 0).Error("Please enter a password of minimum 6 length")),
	)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("Valid email address is required"),
			is.Email.Error("Valid email address is required")),
		validation.Field(&r.Password, validation.Required.Error("Password is required")),
	)
}

// handleRegister creates an account and responds with a bearer token.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := parseJSON(r, &req); err != nil {
		writeValidationErrors(w, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationErrors(w, validationMessages(err)...)
		return
	}

	tok, err := s.auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tok)
}

// handleLogin checks credentials and responds with a bearer token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := parseJSON(r, &req); err != nil {
		writeValidationErrors(w, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationErrors(w, validationMessages(err)...)
		return
	}

	tok, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tok)
}

// handleCurrentUser returns the account bound to the presented token.
func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.auth.CurrentUser(r.Context(), userID(r.Context()))
	if err != nil {
		respondAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
