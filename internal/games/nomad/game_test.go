package nomad

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/desert-nomad/internal/core"
	"github.com/vovakirdan/desert-nomad/internal/registry"
)

// fakeClock is a wall clock that only moves when told to.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestGame(t *testing.T) (*Game, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1000, 0)}
	g := New()
	g.records = &MemoryRecords{Tutorial: true}
	g.SetClock(clock.Now)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	return g, clock
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{"nomad", "nomad_calm"} {
		if !registry.Exists(id) {
			t.Errorf("Game %q not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
		if _, ok := g.(registry.Resizer); !ok {
			t.Errorf("Game %q should support resizing", id)
		}
	}
}

func TestGameStepUsesWallClock(t *testing.T) {
	g, clock := newTestGame(t)

	// The first step has no previous time and uses the nominal tick
	g.Step(input())
	first := g.Session().Elapsed()
	if want := g.runtime.TickDuration(); first != want {
		t.Errorf("First step elapsed = %f, want %f", first, want)
	}

	clock.Advance(20 * time.Millisecond)
	g.Step(input())
	if got := g.Session().Elapsed() - first; math.Abs(got-20) > epsilon {
		t.Errorf("Second step advanced %f ms, want 20", got)
	}

	// A long stall is clamped
	clock.Advance(2 * time.Second)
	before := g.Session().Elapsed()
	g.Step(input())
	if got := g.Session().Elapsed() - before; math.Abs(got-g.cfg.Session.MaxDtMs) > epsilon {
		t.Errorf("Stalled step advanced %f ms, want %f", got, g.cfg.Session.MaxDtMs)
	}
}

func TestGamePause(t *testing.T) {
	g, clock := newTestGame(t)
	g.Step(input())

	res := g.Step(input(core.ActionPause))
	if !res.State.Paused || !g.Paused() {
		t.Fatal("Pause action should pause")
	}

	elapsed := g.Session().Elapsed()
	clock.Advance(5 * time.Second)
	g.Step(input(core.ActionJump))
	if g.Session().Elapsed() != elapsed {
		t.Error("Paused game should not advance")
	}
	if !g.Session().Player().Grounded {
		t.Error("Paused game should ignore jumps")
	}

	// Resuming does not replay the paused time
	g.Step(input(core.ActionPause))
	if g.Paused() {
		t.Fatal("Second pause action should resume")
	}
	if got := g.Session().Elapsed() - elapsed; math.Abs(got-g.runtime.TickDuration()) > epsilon {
		t.Errorf("Resume advanced %f ms, want one nominal tick", got)
	}
}

func TestGameDuckLatch(t *testing.T) {
	g, clock := newTestGame(t)

	g.Step(input(core.ActionDuck))
	if !g.Session().Player().Ducking {
		t.Fatal("Duck action should start ducking")
	}

	hold := g.cfg.Session.DuckHoldMs
	for held := 0.0; held < hold-50; held += 50 {
		clock.Advance(50 * time.Millisecond)
		g.Step(input())
		if !g.Session().Player().Ducking {
			t.Fatalf("Duck released early after %.0f ms", held+50)
		}
	}

	clock.Advance(100 * time.Millisecond)
	g.Step(input())
	if g.Session().Player().Ducking {
		t.Error("Duck should release once the hold runs out")
	}
}

func TestGameJump(t *testing.T) {
	g, _ := newTestGame(t)
	startY := g.Session().Player().Y

	g.Step(input(core.ActionJump))
	if g.Session().Player().Y >= startY {
		t.Errorf("Jump should move the player up, was %f now %f", startY, g.Session().Player().Y)
	}
}

func TestGameResetStartsFresh(t *testing.T) {
	g, clock := newTestGame(t)
	for i := 0; i < 100; i++ {
		clock.Advance(16 * time.Millisecond)
		g.Step(input())
	}
	old := g.Session()

	g.Reset(g.runtime)
	if g.Session() == old {
		t.Fatal("Reset should build a new session")
	}
	if g.Session().Score() != 0 || g.Session().Elapsed() != 0 || len(g.Session().Spawner().Obstacles()) != 0 {
		t.Error("Reset should clear score, time and obstacles")
	}
	if g.Paused() {
		t.Error("Reset should clear pause")
	}
}

func TestCalmVariantHasNoWeather(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	g := NewCalm()
	g.records = &MemoryRecords{}
	g.SetClock(clock.Now)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})

	for i := 0; i < 3000; i++ {
		clock.Advance(50 * time.Millisecond)
		g.Step(input())
	}
	if g.Session().Effects() != NeutralEffect {
		t.Errorf("Calm effects = %+v, want neutral", g.Session().Effects())
	}
}

func TestGameResize(t *testing.T) {
	g, _ := newTestGame(t)
	g.Resize(100, 30)

	g.Step(input())
	want := 30*g.cfg.Viewport.CellHeight - g.cfg.Viewport.GroundOffset
	if g.Session().Snapshot().GroundY != want {
		t.Errorf("GroundY = %f, want %f", g.Session().Snapshot().GroundY, want)
	}
}

func TestGameRender(t *testing.T) {
	g, clock := newTestGame(t)
	scr := core.NewScreen(80, 24)

	for i := 0; i < 400; i++ {
		clock.Advance(16 * time.Millisecond)
		if i%30 == 0 {
			g.Step(input(core.ActionJump))
		} else {
			g.Step(input())
		}
		g.Render(scr)
	}

	out := scr.String()
	if !strings.ContainsRune(out, GroundChar) {
		t.Error("Rendered frame should contain the ground line")
	}
	if !strings.Contains(out, "Score:") {
		t.Error("Rendered frame should contain the HUD")
	}
}
