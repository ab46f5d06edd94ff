package app

import (
	"fmt"
	"sync"

	"github.com/jsamuelsen11/twinboard/internal/domain"
	"github.com/jsamuelsen11/twinboard/internal/domain/stage"
)

// Game holds the catalog of named stages and the current selection. The
// render loop calls Render once per frame while HTTP handlers read and
// modify the catalog, so all methods are safe for concurrent use.
type Game struct {
	mu      sync.RWMutex
	names   []string
	stages  map[string]*stage.Stage
	current string
}

// NewGame creates an empty game. Render is a no-op until a stage is added.
func NewGame() *Game {
	return &Game{stages: make(map[string]*stage.Stage)}
}

// Add registers st under name. Adding an existing name replaces the stage and
// keeps its position in the catalog. The first stage added becomes current.
func (g *Game) Add(name string, st *stage.Stage) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.stages[name]; !exists {
		g.names = append(g.names, name)
	}
	g.stages[name] = st
	if g.current == "" {
		g.current = name
	}
}

// Select makes name the current stage.
func (g *Game) Select(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.stages[name]; !ok {
		return fmt.Errorf("level %q: %w", name, domain.ErrNotFound)
	}
	g.current = name
	return nil
}

// Levels returns the registered names in registration order.
func (g *Game) Levels() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, len(g.names))
	copy(names, g.names)
	return names
}

// Get returns the stage registered under name.
func (g *Game) Get(name string) (*stage.Stage, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st, ok := g.stages[name]
	return st, ok
}

// Current returns the selected stage and its name, or nil and "" when the
// catalog is empty.
func (g *Game) Current() (string, *stage.Stage) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.current == "" {
		return "", nil
	}
	return g.current, g.stages[g.current]
}

// Render draws the current stage.
func (g *Game) Render(dc domain.DrawingContext) {
	_, st := g.Current()
	if st == nil {
		return
	}
	st.Render(dc)
}
