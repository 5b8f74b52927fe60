// Package registry provides a global registry for playable level factories.
// The builtin pack registers itself in init(); levels loaded from disk are
// registered at startup, so the platform can list and instantiate them
// without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-dash/internal/core"
)

// Game is the interface every playable level implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this level (e.g., "first-flight").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "First Flight").
	Title() string

	// Reset starts the level over at attempt 1.
	// The RuntimeConfig provides screen dimensions and driver periods.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Jump, Pause, etc.).
	// It is a no-op while the frame driver is active.
	Step(in core.InputFrame) core.StepResult

	// Frame advances one animation frame. It is a no-op while the tick
	// driver is active. StepResult.Next tells the platform which driver
	// to schedule after either call.
	Frame(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (percent, attempts, paused).
	State() core.GameState
}

// GameInfo contains metadata about a registered level.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a level.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a level factory to the registry.
// Typically called from an init() function.
// Panics if a level with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its level ID.
// Returns an error if the ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown level %q", id)
	}

	return f(), nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Replace registers f under id, overwriting any existing factory.
// Used when a level file on disk shadows a builtin level.
func Replace(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	factories[id] = f
	titles[id] = f().Title()
}
