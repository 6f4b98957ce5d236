package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitHubClient_ListRepositories(t *testing.T) {
	t.Run("requests the account's repositories sorted by update", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/users/octocat/repos", r.URL.Path)
			assert.Equal(t, "updated", r.URL.Query().Get("sort"))
			assert.Equal(t, "100", r.URL.Query().Get("per_page"))
			assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = fmt.Fprint(w, `[
				{"name":"hello","description":"Say hi","language":"Go","html_url":"https://github.com/octocat/hello","updated_at":"2026-02-01T10:00:00Z","fork":false},
				{"name":"dotfiles","description":null,"language":null,"html_url":"https://github.com/octocat/dotfiles","updated_at":"2025-05-01T10:00:00Z","fork":true}
			]`)
		}))
		defer ts.Close()

		client := NewGitHubClient(ts.URL, "octocat", ts.Client())
		repos, err := client.ListRepositories(context.Background())

		require.NoError(t, err)
		require.Len(t, repos, 2)
		assert.Equal(t, "hello", repos[0].Name)
		require.NotNil(t, repos[0].Language)
		assert.Equal(t, "Go", *repos[0].Language)
		assert.False(t, repos[0].Fork)
		assert.Nil(t, repos[1].Description)
		assert.Nil(t, repos[1].Language)
		assert.True(t, repos[1].Fork)
	})

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		kind       ErrorKind
		statusCode int
		notFound   bool
	}{
		{
			name: "404 is an HTTP error flagged as not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = fmt.Fprint(w, `{"message":"Not Found"}`)
			},
			kind:       KindHTTP,
			statusCode: http.StatusNotFound,
			notFound:   true,
		},
		{
			name: "5xx is an HTTP error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			kind:       KindHTTP,
			statusCode: http.StatusBadGateway,
		},
		{
			name: "invalid JSON is a parse failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, `<html>definitely not json</html>`)
			},
			kind: KindParse,
		},
		{
			name: "an object instead of an array is a parse failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, `{"message":"weird"}`)
			},
			kind: KindParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			client := NewGitHubClient(ts.URL, "octocat", ts.Client())
			repos, err := client.ListRepositories(context.Background())

			assert.Nil(t, repos)
			var feedErr *FeedError
			require.True(t, errors.As(err, &feedErr))
			assert.Equal(t, tt.kind, feedErr.Kind)
			assert.Equal(t, tt.statusCode, feedErr.StatusCode)
			assert.Equal(t, tt.notFound, feedErr.NotFound())
		})
	}

	t.Run("connection failure is a network error", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		url := ts.URL
		ts.Close()

		client := NewGitHubClient(url, "octocat", nil)
		_, err := client.ListRepositories(context.Background())

		var feedErr *FeedError
		require.True(t, errors.As(err, &feedErr))
		assert.Equal(t, KindNetwork, feedErr.Kind)
		assert.NotNil(t, errors.Unwrap(err))
	})
}

func TestFeedError_Error(t *testing.T) {
	assert.Equal(t, "HTTP: GitHub API returned status 403", (&FeedError{Kind: KindHTTP, StatusCode: 403}).Error())
	assert.Equal(t, "EMPTY", (&FeedError{Kind: KindEmpty}).Error())
	assert.Contains(t, (&FeedError{Kind: KindParse, Err: errors.New("unexpected EOF")}).Error(), "unexpected EOF")
}

func TestNewGitHubClient_Defaults(t *testing.T) {
	client := NewGitHubClient("", "someone", nil)
	assert.Equal(t, "https://api.github.com/users/someone/repos?sort=updated&per_page=100", client.reposURL())
}
