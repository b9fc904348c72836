// Package logging provides named console loggers with idempotent setup:
// the first request for a name attaches the single console sink, and every
// later request returns the same handle.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultName is the logger name used by callers that do not need a custom
// one.
const DefaultName = "redditsearch"

// Registry maps logger names to their handles. Get is an atomic
// get-or-create, so concurrent first calls for the same name cannot attach
// a second sink.
type Registry struct {
	mu      sync.Mutex
	out     io.Writer
	handles map[string]*log.Logger
}

// NewRegistry returns a registry whose loggers write to w.
func NewRegistry(w io.Writer) *Registry {
	return &Registry{out: w, handles: make(map[string]*log.Logger)}
}

// Get returns the handle registered under name, creating it at the given
// minimum level on first use. An existing handle is returned unchanged; the
// first registration wins.
func (r *Registry) Get(name string, level log.Level) *log.Logger {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.handles[name]; ok {
		return l
	}

	l := log.NewWithOptions(r.out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "[15:04:05]",
		Level:           level,
	})
	r.handles[name] = l
	return l
}

// Reset drops every registered handle. Intended for test isolation.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handles = make(map[string]*log.Logger)
}

// Default is the process-wide registry backing Setup and Logger.
var Default = NewRegistry(os.Stderr)

// Logger is the module-level default handle, ready at import time.
var Logger = Default.Get(DefaultName, log.InfoLevel)

// Setup returns the handle registered under name in the default registry at
// the given minimum level: "debug", "info", "warn", "error" or "fatal".
// Calling it again with the same name returns the same handle without
// attaching another sink.
func Setup(name, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: invalid level %q: %w", level, err)
	}
	return Default.Get(name, lvl), nil
}
