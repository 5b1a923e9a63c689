package adapthttp

import (
	"net/http"

	"devconnect/internal/app"
	"devconnect/internal/github"
	"devconnect/internal/obs"
	"devconnect/internal/token"
)

// Per-IP rate limit applied to the whole API.
const (
	ratePerSecond = 50
	rateBurst     = 100
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth     *app.AuthService
	profiles *app.ProfileService
	posts    *app.PostService
	tokens   *token.Codec
	github   *github.Client
}

// New creates a Server wired to the given application services.
func New(auth *app.AuthService, profiles *app.ProfileService, posts *app.PostService, tokens *token.Codec, gh *github.Client) *Server {
	return &Server{auth: auth, profiles: profiles, posts: posts, tokens: tokens, github: gh}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("GET /auth", s.requireAuth(s.handleCurrentUser))
	api.HandleFunc("POST /auth", s.handleLogin)
	api.HandleFunc("POST /users", s.handleRegister)

	api.HandleFunc("GET /profile", s.handleListProfiles)
	api.HandleFunc("GET /profile/me", s.requireAuth(s.handleMyProfile))
	api.HandleFunc("POST /profile", s.requireAuth(s.handleUpsertProfile))
	api.HandleFunc("DELETE /profile", s.requireAuth(s.handleDeleteAccount))
	api.HandleFunc("GET /profile/user/{user_id}", s.handleProfileByUser)
	api.HandleFunc("PUT /profile/experience", s.requireAuth(s.handleAddExperience))
	api.HandleFunc("DELETE /profile/experience/{exp_id}", s.requireAuth(s.handleRemoveExperience))
	api.HandleFunc("PUT /profile/education", s.requireAuth(s.handleAddEducation))
	api.HandleFunc("DELETE /profile/education/{edu_id}", s.requireAuth(s.handleRemoveEducation))
	api.HandleFunc("GET /profile/github/{username}", s.handleGithubRepos)

	api.HandleFunc("POST /post", s.requireAuth(s.handleCreatePost))
	api.HandleFunc("GET /post", s.requireAuth(s.handleListPosts))
	api.HandleFunc("GET /post/{post_id}", s.requireAuth(s.handleGetPost))
	api.HandleFunc("DELETE /post/{post_id}", s.requireAuth(s.handleDeletePost))
	api.HandleFunc("PUT /post/like/{post_id}", s.requireAuth(s.handleLikePost))
	api.HandleFunc("PUT /post/unlike/{post_id}", s.requireAuth(s.handleUnlikePost))
	api.HandleFunc("POST /post/comment/{post_id}", s.requireAuth(s.handleAddComment))
	api.HandleFunc("DELETE /post/comment/{post_id}/{comment_id}", s.requireAuth(s.handleDeleteComment))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/metrics", obs.Handler())

	return obs.Instrument(rateLimit(s.loggingMiddleware(root), ratePerSecond, rateBurst))
}
