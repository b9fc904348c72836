// Package config resolves application settings from the process environment
// and an optional .env override file, falling back to built-in defaults.
// Precedence per key: environment variable > .env file > default.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvFile is the override file Load looks for in the working directory.
const EnvFile = ".env"

// Settings is a fully populated configuration snapshot. Every field has a
// usable default, so a process with no external configuration still gets
// working values. Snapshots are built fresh on each Load call and never
// mutated afterwards.
type Settings struct {
	RedditClientID     string
	RedditClientSecret string
	RedditUserAgent    string
	DefaultSubreddits  []string
	DefaultKeywords    []string
	DatabasePath       string
	OutputDir          string
}

// ValidationError reports an explicit external value that could not be
// coerced to its field's type. The built-in default is never substituted
// when this happens.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: invalid value %q for %s: %v", e.Value, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// field binds an environment key to the setter that parses its raw value
// into the snapshot.
type field struct {
	key string
	set func(*Settings, string) error
}

// schema is the full set of recognized keys. Anything else found in the
// environment or the override file is ignored.
var schema = []field{
	{"REDDIT_CLIENT_ID", func(s *Settings, v string) error { s.RedditClientID = v; return nil }},
	{"REDDIT_CLIENT_SECRET", func(s *Settings, v string) error { s.RedditClientSecret = v; return nil }},
	{"REDDIT_USER_AGENT", func(s *Settings, v string) error { s.RedditUserAgent = v; return nil }},
	{"DEFAULT_SUBREDDITS", func(s *Settings, v string) error {
		items, err := parseStringList(v)
		if err != nil {
			return err
		}
		s.DefaultSubreddits = items
		return nil
	}},
	{"DEFAULT_KEYWORDS", func(s *Settings, v string) error {
		items, err := parseStringList(v)
		if err != nil {
			return err
		}
		s.DefaultKeywords = items
		return nil
	}},
	{"DATABASE_PATH", func(s *Settings, v string) error { s.DatabasePath = v; return nil }},
	{"OUTPUT_DIR", func(s *Settings, v string) error { s.OutputDir = v; return nil }},
}

func defaults() Settings {
	return Settings{
		RedditUserAgent:   "redditsearch/0.1.0",
		DefaultSubreddits: []string{"SaaS", "Entrepreneur", "startups"},
		DefaultKeywords:   []string{"pay for", "need a tool", "wish there was"},
		DatabasePath:      "data/redditsearch.db",
		OutputDir:         "output",
	}
}

// Load returns a fresh snapshot resolved from the process environment and
// the .env file in the working directory. Nothing is cached between calls,
// so an environment change is visible on the next call.
func Load() (Settings, error) {
	return LoadFile(EnvFile)
}

// LoadFile is Load with an explicit override-file path. A missing file means
// no overrides are present; a file that cannot be parsed fails the whole
// load. The file is read directly and never copied into the process
// environment.
func LoadFile(path string) (Settings, error) {
	overrides, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		overrides = nil
	}

	s := defaults()
	for _, f := range schema {
		raw := os.Getenv(f.key)
		if raw == "" {
			raw = overrides[f.key]
		}
		if raw == "" {
			continue
		}
		if err := f.set(&s, raw); err != nil {
			return Settings{}, &ValidationError{Field: f.key, Value: raw, Err: err}
		}
	}
	return s, nil
}

// parseStringList accepts either a JSON array literal (["a","b"]) or a
// comma-delimited string (a, b). Both forms round-trip simple string lists.
func parseStringList(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "[") {
		var items []string
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return nil, fmt.Errorf("parse list literal: %w", err)
		}
		if len(items) == 0 {
			return nil, errors.New("empty list")
		}
		return items, nil
	}

	var items []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	if len(items) == 0 {
		return nil, errors.New("empty list")
	}
	return items, nil
}
