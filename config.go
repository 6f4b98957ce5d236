package main

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

const (
	defaultPort            = "8080"
	defaultGitHubUser      = "samyoghosh2004"
	defaultGitHubAPIURL    = "https://api.github.com"
	defaultContactEmail    = "samyoghosh2004@gmail.com"
	defaultDatabasePath    = "portfolio.db"
	defaultRevealThreshold = 0.18
)

type Config struct {
	Port            string
	GitHubUser      string
	GitHubAPIURL    string
	ContactEmail    string
	DatabasePath    string // "off" disables visit tracking
	Debug           bool
	RevealThreshold float64
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() Config {
	return LoadConfigWithEnv(os.Getenv)
}

// LoadConfigWithEnv builds a Config from getenv, falling back to defaults for unset keys.
func LoadConfigWithEnv(getenv func(string) string) Config {
	cfg := Config{
		Port:            getenv("PORT"),
		GitHubUser:      strings.TrimSpace(getenv("GITHUB_USER")),
		GitHubAPIURL:    strings.TrimSuffix(getenv("GITHUB_API_URL"), "/"),
		ContactEmail:    getenv("CONTACT_EMAIL"),
		DatabasePath:    defaultDatabasePath,
		Debug:           getenv("DEBUG") == "true",
		RevealThreshold: defaultRevealThreshold,
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.GitHubUser == "" {
		cfg.GitHubUser = defaultGitHubUser
	}
	if cfg.GitHubAPIURL == "" {
		cfg.GitHubAPIURL = defaultGitHubAPIURL
	}
	if cfg.ContactEmail == "" {
		cfg.ContactEmail = defaultContactEmail
	}
	if v := getenv("DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := getenv("REVEAL_THRESHOLD"); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RevealThreshold = t
		} else {
			cfg.RevealThreshold = -1
		}
	}

	return cfg
}

// TrackVisits reports whether the visit log is enabled.
func (c Config) TrackVisits() bool {
	return c.DatabasePath != "off"
}

func (c Config) Validate() error {
	if c.GitHubUser == "" {
		return errors.New("GITHUB_USER must be set")
	}
	if c.RevealThreshold <= 0 || c.RevealThreshold > 1 {
		return errors.New("REVEAL_THRESHOLD must be a number in (0, 1]")
	}
	return nil
}
