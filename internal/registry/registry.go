// Package registry maps board IDs to game factories. Variants register
// themselves from init so the CLI and SSH sessions can list and build them
// without importing each one by name.
package registry

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/vovakirdan/torus-snake/internal/core"
)

// Game is what the terminal driver runs. Implementations keep all rules
// and drawing in pure code; the driver owns timing, key mapping and output.
type Game interface {
	// ID is the CLI name, e.g. "snake_mini".
	ID() string

	// Title is shown in menus, e.g. "Snake (Mini 4x4)".
	Title() string

	// Reset starts a fresh round for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step runs one driver frame with the actions pressed since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws the round into dst.
	Render(dst *core.Screen)

	// State reports score and round status without advancing anything.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new, not yet Reset, game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a factory under id. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	// Title comes from a throwaway instance; factories must not Reset.
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered games ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(entries))
	for _, id := range slices.Sorted(maps.Keys(entries)) {
		infos = append(infos, GameInfo{ID: id, Title: entries[id].title})
	}
	return infos
}

// Create builds a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
