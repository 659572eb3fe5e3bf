// Package nomad implements Desert Nomad, a side-scrolling desert runner.
// The traveller jumps and ducks past cacti, rocks, wildlife, quicksand and
// tumbleweeds while rotating weather bends the physics.
package nomad

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/desert-nomad/internal/config"
	"github.com/vovakirdan/desert-nomad/internal/core"
	"github.com/vovakirdan/desert-nomad/internal/registry"
)

// Package-level collaborators set by the CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	records          Records
	audio            AudioHooks  = NopAudio{}
	logger           *log.Logger = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown values fall back to the config as loaded.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetRecords sets the store for the best score and tutorial flag.
func SetRecords(r Records) {
	records = r
}

// SetAudio sets the sound cue receiver.
func SetAudio(a AudioHooks) {
	if a == nil {
		a = NopAudio{}
	}
	audio = a
}

// SetLogger sets the logger used by sessions.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts a Session to the registry. It measures wall-clock time
// between steps, turns terminal key presses into jump and duck calls, and
// handles pause and restart.
type Game struct {
	id    string
	title string
	calm  bool

	runtime core.RuntimeConfig
	cfg     config.NomadConfig
	session *Session
	records Records

	now      func() time.Time
	last     time.Time
	paused   bool
	duckHold float64 // Remaining duck latch in milliseconds
}

// New creates a new Desert Nomad game instance.
func New() *Game {
	return &Game{id: "nomad", title: "Desert Nomad", now: time.Now}
}

// NewCalm creates a variant with the weather switched off.
func NewCalm() *Game {
	return &Game{id: "nomad_calm", title: "Desert Nomad (Calm)", calm: true, now: time.Now}
}

// SetClock replaces the wall clock, mainly for tests.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a new run. The previous session is discarded.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadNomad(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultNomadConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyNomadPreset(&cfg, difficultyPreset)
	}
	if g.calm {
		cfg.Weather.Enabled = false
	}
	g.cfg = cfg

	if g.records == nil {
		g.records = records
		if g.records == nil {
			g.records = &MemoryRecords{}
		}
	}

	w, h := g.worldSize(runtime.ScreenW, runtime.ScreenH)
	g.session = NewSession(Options{
		Config:  cfg,
		Seed:    runtime.Seed,
		Width:   w,
		Height:  h,
		Records: g.records,
		Audio:   audio,
		Logger:  logger.With("game", g.id),
	})

	g.last = time.Time{}
	g.paused = false
	g.duckHold = 0
}

// worldSize converts a terminal size to world units.
func (g *Game) worldSize(cols, rows int) (float64, float64) {
	return float64(cols) * g.cfg.Viewport.CellWidth, float64(rows) * g.cfg.Viewport.CellHeight
}

// Resize adapts the running session to a new terminal size.
func (g *Game) Resize(cols, rows int) {
	g.runtime.ScreenW = cols
	g.runtime.ScreenH = rows
	if g.session != nil {
		g.session.SetViewport(g.worldSize(cols, rows))
	}
}

// Step advances the game by one tick using the wall-clock time since the
// previous step.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.GameOver() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.last = time.Time{}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	now := g.now()
	dt := g.runtime.TickDuration()
	if !g.last.IsZero() {
		dt = float64(now.Sub(g.last)) / float64(time.Millisecond)
	}
	g.last = now

	if in.Has(core.ActionJump) {
		g.session.Jump()
	}
	// Terminals report presses, not releases, so a duck is held for a while
	if in.Has(core.ActionDuck) {
		g.duckHold = g.cfg.Session.DuckHoldMs
		g.session.Duck(true)
	}

	g.session.Tick(dt)

	if g.duckHold > 0 {
		g.duckHold -= dt
		if g.duckHold <= 0 {
			g.duckHold = 0
			g.session.Duck(false)
		}
	}

	return core.StepResult{State: g.State()}
}

// Session returns the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("nomad", func() registry.Game {
		return New()
	})
	registry.Register("nomad_calm", func() registry.Game {
		return NewCalm()
	})
}
