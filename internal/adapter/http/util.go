package adapthttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"devconnect/internal/app"
	"devconnect/internal/github"

	validation "github.com/go-ozzo/ozzo-validation"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMsg writes the single-error shape {"msg": "..."}.
func writeMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"msg": msg})
}

// writeValidationErrors writes the itemized shape {"errors":[{"msg":...}]}.
func writeValidationErrors(w http.ResponseWriter, msgs ...string) {
	items := make([]map[string]string, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, map[string]string{"msg": m})
	}
	writeJSON(w, http.StatusBadRequest, map[string]any{"errors": items})
}

// validationMessages flattens an ozzo validation result into its per-field
// messages.
func validationMessages(err error) []string {
	var fields validation.Errors
	if !errors.As(err, &fields) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(fields))
	for _, fieldErr := range fields {
		msgs = append(msgs, fieldErr.Error())
	}
	return msgs
}

func parseJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// respondAppError maps service errors onto the API's status codes and
// message shapes. Existence failures and ownership denials stay distinct.
// Anything unrecognized is a store failure: logged locally, reported as a
// generic 500.
func respondAppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrPostNotFound):
		writeMsg(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, app.ErrCommentNotFound):
		writeMsg(w, http.StatusNotFound, "Comment does not exist")
	case errors.Is(err, app.ErrProfileNotFound):
		writeMsg(w, http.StatusNotFound, "Profile not found")
	case errors.Is(err, app.ErrUserNotFound):
		writeMsg(w, http.StatusNotFound, "User not found")
	case errors.Is(err, app.ErrEntryNotFound):
		writeMsg(w, http.StatusNotFound, "Entry not found")
	case errors.Is(err, app.ErrNotOwner):
		writeMsg(w, http.StatusUnauthorized, "User not Authorised")
	case errors.Is(err, app.ErrAlreadyLiked):
		writeMsg(w, http.StatusBadRequest, "Post already liked")
	case errors.Is(err, app.ErrNotLiked):
		writeMsg(w, http.StatusBadRequest, "Post was not liked")
	case errors.Is(err, app.ErrEmailTaken):
		writeValidationErrors(w, "User already exists")
	case errors.Is(err, app.ErrInvalidCredentials):
		writeValidationErrors(w, "Invalid credentials")
	case errors.Is(err, github.ErrNoProfile):
		writeMsg(w, http.StatusNotFound, "No github profile found")
	default:
		log.Printf("internal error: %v", err)
		writeMsg(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
