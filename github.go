package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const reposPerPage = 100

// ErrorKind classifies why live repository data could not be used.
type ErrorKind string

const (
	KindNetwork ErrorKind = "NETWORK"
	KindHTTP    ErrorKind = "HTTP"
	KindEmpty   ErrorKind = "EMPTY"
	KindParse   ErrorKind = "PARSE"
)

// FeedError is returned by the GitHub client and the feed filter.
type FeedError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *FeedError) Error() string {
	switch {
	case e.Kind == KindHTTP:
		return fmt.Sprintf("%s: GitHub API returned status %d", e.Kind, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return string(e.Kind)
	}
}

func (e *FeedError) Unwrap() error {
	return e.Err
}

// NotFound reports whether GitHub answered 404 for the account.
func (e *FeedError) NotFound() bool {
	return e.Kind == KindHTTP && e.StatusCode == http.StatusNotFound
}

// Repository is the subset of the GitHub repository payload the site renders.
type Repository struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Language    *string `json:"language"`
	HTMLURL     string  `json:"html_url"`
	UpdatedAt   string  `json:"updated_at"`
	Fork        bool    `json:"fork"`
}

// GitHubClient lists public repositories for a single account.
type GitHubClient struct {
	baseURL    string
	user       string
	httpClient *http.Client
}

// NewGitHubClient creates a client for user. An empty baseURL uses the public API.
func NewGitHubClient(baseURL, user string, httpClient *http.Client) *GitHubClient {
	if baseURL == "" {
		baseURL = defaultGitHubAPIURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GitHubClient{baseURL: baseURL, user: user, httpClient: httpClient}
}

func (c *GitHubClient) reposURL() string {
	return fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=%d", c.baseURL, url.PathEscape(c.user), reposPerPage)
}

// ListRepositories performs one request for the account's most recently updated repositories.
func (c *GitHubClient) ListRepositories(ctx context.Context) ([]Repository, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.reposURL(), nil)
	if err != nil {
		return nil, &FeedError{Kind: KindNetwork, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FeedError{Kind: KindNetwork, Err: fmt.Errorf("executing request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FeedError{Kind: KindHTTP, StatusCode: resp.StatusCode}
	}

	var repos []Repository
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, &FeedError{Kind: KindParse, Err: fmt.Errorf("decoding repositories: %w", err)}
	}
	return repos, nil
}
