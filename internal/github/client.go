// Package github provides a minimal client for listing a user's public
// repositories.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.github.com"

// ErrNoProfile indicates GitHub did not return repositories for the
// requested username.
var ErrNoProfile = errors.New("github profile not found")

// Repo is the subset of the repository listing the API exposes.
type Repo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	HTMLURL     string    `json:"html_url"`
	Description string    `json:"description"`
	Stars       int       `json:"stargazers_count"`
	Watchers    int       `json:"watchers_count"`
	Forks       int       `json:"forks_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Config holds the client credentials and optional overrides.
type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	HTTPClient   *http.Client
}

// Client lists repositories via the GitHub REST API.
type Client struct {
	config     Config
	httpClient *http.Client
}

// New creates a Client. Credentials are optional; without them requests run
// against the unauthenticated rate limit.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{config: cfg, httpClient: client}
}

// ListRepos returns the user's five oldest public repositories.
func (c *Client) ListRepos(ctx context.Context, username string) ([]Repo, error) {
	u := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc",
		c.config.BaseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "devconnect")
	if c.config.ClientID != "" {
		req.SetBasicAuth(c.config.ClientID, c.config.ClientSecret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNoProfile
	}

	var repos []Repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("decode repos: %w", err)
	}
	return repos, nil
}
