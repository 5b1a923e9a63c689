package adapthttp

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type postRequest struct {
	Text string `json:"text"`
}

func (r postRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required.Error("Text is required")),
	)
}

// handleCreatePost creates a post authored by the caller.
func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := parseJSON(r, &req); err != nil {
		writeValidationErrors(w, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationErrors(w, validationMessages(err)...)
		return
	}

	post, err := s.posts.Create(r.Context(), userID(r.Context()), req.Text)
	if err != nil {
		respondAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// handleListPosts returns all posts, newest first.
func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.posts.List(r.Context())
	if err != nil {
		respondAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	post, err := s.posts.Get(r.Context(), r.PathValue("post_id"))
	if err != nil {
		respondAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// handleDeletePost removes a post. Only its author may do so.
func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	if err := s.posts.Delete(r.Context(), userID(r.Context()), r.PathValue("post_id")); err != nil {
		respondAppError(w, err)
		return
	}
	writeMsg(w, http.StatusOK, "Post Removed")
}

func (s *Server) handleLikePost(w http.ResponseWriter, r *http.Request) {
	likes, err := s.posts.Like(r.Context(), userID(r.Context()), r.PathValue("post_id"))
	if err != nil {
		respondAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, likes)
}

func (s *Server) handleUnlikePost(w http.ResponseWriter, r *http.Request) {
	likes, err := s.posts.Unlike(r.Context(), userID(r.Context()), r.PathValue("post_id"))
	if err != nil {
		respondAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, likes)
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := parseJSON(r, &req); err != nil {
		writeValidationErrors(w, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationErrors(w, validationMessages(err)...)
		return
	}

	comments, err := s.posts.AddComment(r.Context(), userID(r.Context()), r.PathValue("post_id"), req.Text)
	if err != nil {
		respondAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

// handleDeleteComment removes the exact comment named in the path after the
// service confirms it exists and belongs to the caller.
func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	comments, err := s.posts.DeleteComment(r.Context(), userID(r.Context()),
		r.PathValue("post_id"), r.PathValue("comment_id"))
	if err != nil {
		respondAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}
