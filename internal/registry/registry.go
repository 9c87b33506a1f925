// Package registry maps playable variant IDs to game factories so the CLI,
// the menus and score storage can refer to a game by ID alone.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Game is what the platform drives. Implementations hold pure logic; the
// platform handles input mapping and rendering to the terminal.
type Game interface {
	// ID returns the variant identifier, also used as the score key.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new session. Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

// Registry holds factories in registration order.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	titles    map[string]string
	order     []string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		titles:    make(map[string]string),
	}
}

// Register adds a game factory under id.
// Panics if a game with the same ID is already registered.
func (r *Registry) Register(id, title string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	r.factories[id] = f
	r.titles[id] = title
	r.order = append(r.order, id)
}

// List returns all registered games in registration order.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]GameInfo, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, GameInfo{ID: id, Title: r.titles[id]})
	}
	return result
}

// Create instantiates a new game by its ID.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[id]
	return ok
}

// Title returns the display title for id, or id itself if unknown.
func (r *Registry) Title(id string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if t, ok := r.titles[id]; ok {
		return t
	}
	return id
}
