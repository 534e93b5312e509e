// Package strategy provides a global registry for move-selection
// strategies. Strategies register themselves in init() functions,
// allowing the CLI and TUI to discover and instantiate them without
// hardcoded dependencies.
package strategy

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/merge48/internal/board"
)

// Config contains configuration passed to strategies at initialization.
type Config struct {
	Seed  int64 // RNG seed for strategies that randomize
	Depth int   // Default search depth for searching strategies (0 = strategy default)
}

// Strategy is the interface every move-selection strategy implements.
// Strategies contain pure decision logic; applying the chosen move and
// spawning tiles is the caller's job.
type Strategy interface {
	// ID returns a unique identifier (e.g. "expectimax", "random").
	// Used for CLI commands and result storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the strategy state.
	Reset(cfg Config)

	// NextMove picks a move for the given position. Reports false when
	// no legal move exists.
	NextMove(b board.Board) (board.Direction, bool)
}

// Info contains metadata about a registered strategy.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a strategy.
type Factory func() Strategy

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a strategy factory to the registry.
// Typically called from a strategy's init() function.
// Panics if a strategy with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("strategy: %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	s := f()
	titles[id] = s.Title()
}

// List returns information about all registered strategies, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new strategy by its ID.
// Returns an error if the strategy ID is not registered.
func Create(id string) (Strategy, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("strategy: unknown strategy %q", id)
	}

	return f(), nil
}

// Exists checks if a strategy with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
