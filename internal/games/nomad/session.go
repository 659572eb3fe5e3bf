package nomad

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/desert-nomad/internal/config"
	"github.com/vovakirdan/desert-nomad/internal/core"
)

// cosmeticSeedSalt separates the cosmetic weather RNG from the gameplay RNG.
const cosmeticSeedSalt = 0x5eed_d0e5

// Options configures a new Session.
type Options struct {
	Config config.NomadConfig
	Seed   int64
	Width  float64 // Viewport width in world units
	Height float64 // Viewport height in world units

	Records Records     // Optional, defaults to MemoryRecords
	Audio   AudioHooks  // Optional, defaults to NopAudio
	Logger  *log.Logger // Optional, defaults to a discarding logger
}

// Session is one run of the game. It owns the weather, the spawner (and
// through it the obstacles) and the player. Restarting means building a
// new Session.
type Session struct {
	cfg        config.NomadConfig
	difficulty *config.DifficultyModel
	records    Records
	audio      AudioHooks
	log        *log.Logger

	weather *Weather
	spawner *Spawner
	player  *Player
	effects Effect

	width   float64
	height  float64
	groundY float64

	speed        float64
	score        float64
	best         int
	newBest      bool
	tier         config.Tier
	elapsed      float64
	ticks        int
	gameOver     bool
	hitKind      ObstacleKind
	tutorialDone bool
}

// NewSession creates a fresh run.
func NewSession(opts Options) *Session {
	cfg := opts.Config
	if opts.Records == nil {
		opts.Records = &MemoryRecords{}
	}
	if opts.Audio == nil {
		opts.Audio = NopAudio{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:        cfg,
		difficulty: config.NewDifficultyModel(cfg.Difficulty.Tiers),
		records:    opts.Records,
		audio:      opts.Audio,
		log:        opts.Logger,
		width:      opts.Width,
		height:     opts.Height,
		speed:      cfg.Physics.BaseSpeed,
	}
	s.groundY = s.computeGround()

	best, err := s.records.HighScore()
	if err != nil {
		s.log.Warn("could not load high score", "err", err)
	}
	s.best = best

	done, err := s.records.TutorialComplete()
	if err != nil {
		s.log.Warn("could not load tutorial state", "err", err)
	}
	s.tutorialDone = done

	s.weather = NewWeather(cfg.Weather, opts.Seed^cosmeticSeedSalt)
	s.spawner = NewSpawner(cfg.Obstacles, core.NewRand(opts.Seed))
	s.player = NewPlayer(cfg.Player, cfg.Physics, s.groundY)
	s.tier = s.difficulty.TierFor(0)
	s.effects = s.weather.Effects()
	return s
}

// computeGround returns the ground line for the current viewport.
func (s *Session) computeGround() float64 {
	return s.height - s.cfg.Viewport.GroundOffset
}

// Tick advances the run by dt milliseconds. It does nothing once the run
// is over. dt is clamped to [0, max_dt_ms].
func (s *Session) Tick(dt float64) {
	if s.gameOver {
		return
	}
	dt = core.ClampF(dt, 0, s.cfg.Session.MaxDtMs)
	s.elapsed += dt
	s.ticks++
	s.groundY = s.computeGround()

	// Scroll speed follows the tier smoothly and creeps up over time
	phys := s.cfg.Physics
	s.tier = s.difficulty.TierFor(s.score)
	target := s.difficulty.TargetSpeed(phys.BaseSpeed, s.score)
	s.speed = core.Lerp(s.speed, target, phys.SpeedLerp) + phys.SpeedIncrement*dt
	s.speed = math.Min(phys.MaxSpeed, s.speed)

	ev := s.weather.Advance(dt)
	if ev.Changed {
		s.log.Info("weather changing", "to", ev.Target, "forced", ev.ForcedClear, "intensity", s.weather.Intensity())
		s.audio.OnWeatherWarning()
	}
	if ev.Committed {
		s.log.Debug("weather settled", "kind", s.weather.Current())
	}
	if ev.WindAmbient {
		s.audio.OnWindAmbient(ev.WindIntensity)
	}
	s.effects = s.weather.Effects()
	scroll := s.speed * s.effects.SpeedMod

	s.score += s.speed * phys.ScoreRate

	res := s.player.Tick(dt, s.effects, s.groundY)
	if res.Landed {
		s.audio.OnLand()
	}
	s.player.Animate(dt, scroll)

	spawn := s.spawner.Tick(dt, scroll, SpawnContext{
		Allowed:       s.ShouldSpawnObstacles(),
		Score:         s.score,
		Tier:          s.tier,
		Visibility:    s.effects.Visibility,
		SevereWeather: s.cfg.Weather.Enabled && s.weather.Current() == s.weather.Severe(),
		SessionTime:   s.elapsed,
		ViewportWidth: s.width,
		GroundY:       s.groundY,
	})
	if spawn.Spawned {
		s.log.Debug("obstacle spawned", "kind", spawn.Kind, "next_gap", spawn.NextGap, "tier", s.tier.Label)
	}

	wasTrapped := s.player.InHazard
	verdict := CheckCollisions(s.player, s.spawner.Obstacles())
	if verdict.Hazard && !wasTrapped {
		s.log.Debug("player trapped in hazard")
	}
	if verdict.Fatal {
		s.endRun(verdict.HitKind)
	}
}

// endRun finishes the session and stores a new best score.
func (s *Session) endRun(kind ObstacleKind) {
	s.gameOver = true
	s.hitKind = kind
	s.audio.OnHit()

	final := s.Score()
	if final > s.best {
		s.best = final
		s.newBest = true
		if err := s.records.SaveHighScore(final); err != nil {
			s.log.Warn("could not save high score", "err", err)
		}
	}
	s.log.Info("game over", "score", final, "best", s.best, "hit", kind, "tier", s.tier.Label,
		"weather", s.weather.Current(), "elapsed_ms", int(s.elapsed))
}

// Jump forwards a jump press to the player.
func (s *Session) Jump() JumpKind {
	if s.gameOver {
		return JumpNone
	}
	kind := s.player.Jump(s.effects)
	if kind == JumpNone {
		return kind
	}
	s.audio.OnJump()
	if kind == JumpGround {
		s.completeTutorial()
	}
	return kind
}

// Duck starts or stops ducking and reports whether the posture changed.
func (s *Session) Duck(active bool) bool {
	if s.gameOver {
		return false
	}
	changed := s.player.Duck(active)
	if changed && active {
		s.completeTutorial()
	}
	return changed
}

func (s *Session) completeTutorial() {
	if s.tutorialDone {
		return
	}
	s.tutorialDone = true
	if err := s.records.MarkTutorialComplete(); err != nil {
		s.log.Warn("could not save tutorial state", "err", err)
	}
	s.log.Info("tutorial complete")
}

// ShouldSpawnObstacles reports whether obstacles may spawn. They are held
// back until the first jump or duck of a player who never finished the
// tutorial.
func (s *Session) ShouldSpawnObstacles() bool {
	return s.tutorialDone
}

// SetViewport updates the viewport in world units. The ground follows on
// the next tick.
func (s *Session) SetViewport(width, height float64) {
	s.width = width
	s.height = height
}

// Score returns the score rounded down.
func (s *Session) Score() int {
	return int(s.score)
}

// Best returns the best score, including this run.
func (s *Session) Best() int {
	return s.best
}

// GameOver reports whether the run has ended.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Speed returns the current scroll speed before weather.
func (s *Session) Speed() float64 {
	return s.speed
}

// Tier returns the tier for the current score.
func (s *Session) Tier() config.Tier {
	return s.tier
}

// Effects returns the weather effects applied this tick.
func (s *Session) Effects() Effect {
	return s.effects
}

// Elapsed returns the simulated time in milliseconds.
func (s *Session) Elapsed() float64 {
	return s.elapsed
}

// Weather exposes the weather engine.
func (s *Session) Weather() *Weather {
	return s.weather
}

// Player exposes the player.
func (s *Session) Player() *Player {
	return s.player
}

// Spawner exposes the spawner.
func (s *Session) Spawner() *Spawner {
	return s.spawner
}
