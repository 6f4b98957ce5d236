package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"
)

const (
	maxCards = 9

	descriptionPlaceholder = "No description provided for this repository yet."
	languagePlaceholder    = "Mixed stack"

	emptyMessage       = "No public repositories found yet; showing curated projects."
	unavailableMessage = "Could not load live GitHub data right now; showing curated projects instead."
)

// RepositoryLister is the source of live repositories for the feed.
type RepositoryLister interface {
	ListRepositories(ctx context.Context) ([]Repository, error)
}

// Card is a single rendered project.
type Card struct {
	Name        string
	Description string
	Language    string
	Updated     string
	URL         string
}

// Feed is everything the project grid and skill cloud need for one render pass.
type Feed struct {
	Warning  string
	Cards    []Card
	Skills   []string
	Fallback bool
}

type Renderer struct {
	lister   RepositoryLister
	user     string
	fallback []Repository
	baseline []string
}

func NewRenderer(lister RepositoryLister, user string, baseline []string) *Renderer {
	return &Renderer{
		lister:   lister,
		user:     user,
		fallback: fallbackRepositories(user),
		baseline: baseline,
	}
}

// Load fetches live repositories and builds the feed. Failures never escape: the
// curated fallback list is rendered with an explanatory warning instead.
func (r *Renderer) Load(ctx context.Context) Feed {
	repos, err := r.fetch(ctx)
	if err != nil {
		slog.Warn("Using fallback projects", "user", r.user, "error", err)
		return Feed{
			Warning:  r.fallbackMessage(err),
			Cards:    RenderCards(r.fallback),
			Skills:   RenderSkills(r.fallback, r.baseline),
			Fallback: true,
		}
	}

	slog.Debug("Loaded repositories", "user", r.user, "count", len(repos))
	return Feed{
		Cards:  RenderCards(repos[:min(maxCards, len(repos))]),
		Skills: RenderSkills(repos, r.baseline),
	}
}

// fetch returns the non-fork repositories newest first, or a *FeedError.
func (r *Renderer) fetch(ctx context.Context) ([]Repository, error) {
	repos, err := r.lister.ListRepositories(ctx)
	if err != nil {
		return nil, err
	}

	owned := selectRepositories(repos)
	if len(owned) == 0 {
		return nil, &FeedError{Kind: KindEmpty}
	}
	return owned, nil
}

func (r *Renderer) fallbackMessage(err error) string {
	var feedErr *FeedError
	if !errors.As(err, &feedErr) {
		return unavailableMessage
	}
	switch {
	case feedErr.NotFound():
		return fmt.Sprintf("GitHub account %q could not be found; showing curated projects.", r.user)
	case feedErr.Kind == KindEmpty:
		return emptyMessage
	default:
		return unavailableMessage
	}
}

// selectRepositories drops forks and orders the rest by updated_at, newest first.
func selectRepositories(repos []Repository) []Repository {
	owned := make([]Repository, 0, len(repos))
	for _, repo := range repos {
		if !repo.Fork {
			owned = append(owned, repo)
		}
	}

	slices.SortStableFunc(owned, func(a, b Repository) int {
		return parseUpdated(b.UpdatedAt).Compare(parseUpdated(a.UpdatedAt))
	})
	return owned
}

// parseUpdated returns the zero time for unparseable input so such entries sort last.
func parseUpdated(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// RenderCards builds one card per repository, preserving input order.
func RenderCards(repos []Repository) []Card {
	cards := make([]Card, 0, len(repos))
	for _, repo := range repos {
		card := Card{
			Name:        repo.Name,
			Description: descriptionPlaceholder,
			Language:    languagePlaceholder,
			Updated:     formatUpdated(repo.UpdatedAt),
			URL:         repo.HTMLURL,
		}
		if repo.Description != nil && *repo.Description != "" {
			card.Description = *repo.Description
		}
		if repo.Language != nil && *repo.Language != "" {
			card.Language = *repo.Language
		}
		cards = append(cards, card)
	}
	return cards
}

func formatUpdated(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.UTC().Format("Jan 2006")
}
