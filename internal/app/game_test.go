package app

import (
	"errors"
	"sync"
	"testing"

	"github.com/jsamuelsen11/twinboard/internal/domain"
	"github.com/jsamuelsen11/twinboard/internal/domain/stage"
)

// countingContext counts drawing calls.
type countingContext struct {
	mu    sync.Mutex
	calls int
}

func (c *countingContext) ClearRect(_, _, _, _ float64) { c.inc() }

func (c *countingContext) SetFillStyle(string) error { c.inc(); return nil }

func (c *countingContext) FillRect(_, _, _, _ float64) error { c.inc(); return nil }

func (c *countingContext) inc() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
}

func emptyStage() *stage.Stage {
	return &stage.Stage{}
}

func TestGame_AddSelectsFirst(t *testing.T) {
	t.Parallel()

	g := NewGame()
	if name, st := g.Current(); name != "" || st != nil {
		t.Fatalf("Current() on empty game = (%q, %v), want empty", name, st)
	}

	first, second := emptyStage(), emptyStage()
	g.Add("tutorial", first)
	g.Add("bridge", second)

	name, st := g.Current()
	if name != "tutorial" || st != first {
		t.Errorf("Current() = (%q, %p), want (tutorial, %p)", name, st, first)
	}

	got := g.Levels()
	if len(got) != 2 || got[0] != "tutorial" || got[1] != "bridge" {
		t.Errorf("Levels() = %v, want [tutorial bridge]", got)
	}
}

func TestGame_AddReplacesInPlace(t *testing.T) {
	t.Parallel()

	g := NewGame()
	g.Add("a", emptyStage())
	g.Add("b", emptyStage())

	replacement := emptyStage()
	g.Add("a", replacement)

	if got := g.Levels(); len(got) != 2 || got[0] != "a" {
		t.Errorf("Levels() = %v, want [a b]", got)
	}
	if st, _ := g.Get("a"); st != replacement {
		t.Error("Get(a) did not return the replacement stage")
	}
}

func TestGame_Select(t *testing.T) {
	t.Parallel()

	g := NewGame()
	g.Add("a", emptyStage())
	g.Add("b", emptyStage())

	if err := g.Select("b"); err != nil {
		t.Fatalf("Select(b) error = %v", err)
	}
	if name, _ := g.Current(); name != "b" {
		t.Errorf("Current() name = %q, want b", name)
	}

	err := g.Select("missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Select(missing) error = %v, want ErrNotFound", err)
	}
	if name, _ := g.Current(); name != "b" {
		t.Errorf("failed Select changed current to %q", name)
	}
}

func TestGame_LevelsReturnsCopy(t *testing.T) {
	t.Parallel()

	g := NewGame()
	g.Add("a", emptyStage())

	names := g.Levels()
	names[0] = "mutated"

	if got := g.Levels(); got[0] != "a" {
		t.Errorf("Levels()[0] = %q after caller mutation, want a", got[0])
	}
}

func TestGame_RenderDelegatesToNoOpStage(t *testing.T) {
	t.Parallel()

	dc := &countingContext{}

	g := NewGame()
	g.Render(dc)

	st, err := stage.Decode([]byte(`{"boards": [], "blocks": []}`))
	if err != nil {
		t.Fatalf("stage.Decode() error = %v", err)
	}
	g.Add("empty", st)
	g.Render(dc)

	if dc.calls != 0 {
		t.Errorf("Render() made %d drawing calls, want 0", dc.calls)
	}
}

func TestGame_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	g := NewGame()
	g.Add("base", emptyStage())
	dc := &countingContext{}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				g.Render(dc)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				g.Add("extra", emptyStage())
				_ = g.Select("base")
				_ = g.Levels()
			}
		}()
	}
	wg.Wait()

	if got := len(g.Levels()); got != 2 {
		t.Errorf("len(Levels()) = %d, want 2", got)
	}
}
