// Package registry provides a global registry of terminal frontends.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and open them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Options carries what a frontend needs to open a session.
type Options struct {
	Runtime core.RuntimeConfig
	Keys    config.KeyBindings
	Logger  *log.Logger
}

// Session is an open terminal: a Display sink and an Input source for the
// game loop.
type Session interface {
	// Draw renders a full frame.
	Draw(f tetris.Frame) error

	// Poll returns the next pending action without blocking.
	Poll() (core.Action, bool)

	// Done is closed when the terminal side goes away on its own
	// (for example the program exits or the connection drops).
	Done() <-chan struct{}

	// Close restores the terminal and releases resources.
	Close() error
}

// Frontend opens sessions on a particular terminal library.
type Frontend interface {
	// ID returns a unique identifier used by --frontend (e.g. "tea").
	ID() string

	// Title returns a human-readable name for listings.
	Title() string

	// Open takes over the terminal and returns a session.
	Open(opts Options) (Session, error)
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new frontend.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend package's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a frontend by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
