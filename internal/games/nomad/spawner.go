package nomad

import (
	"math"

	"github.com/vovakirdan/desert-nomad/internal/config"
	"github.com/vovakirdan/desert-nomad/internal/core"
)

// SpawnContext carries everything the spawner reads from the session.
type SpawnContext struct {
	Allowed       bool // False while the tutorial gate holds obstacles back
	Score         float64
	Tier          config.Tier
	Visibility    float64 // Current weather visibility, 0.0 - 1.0
	SevereWeather bool
	SessionTime   float64
	ViewportWidth float64
	GroundY       float64
}

// SpawnResult reports a spawn, if one happened this tick.
type SpawnResult struct {
	Spawned bool
	Kind    ObstacleKind
	NextGap float64
}

// Spawner generates obstacles and owns them in spawn order.
// The timer is distance based, so pausing halts spawning exactly.
type Spawner struct {
	cfg       config.NomadObstacles
	rng       *core.Rand
	obstacles []Obstacle

	timer           float64
	nextGap         float64
	lastKind        ObstacleKind
	hasLast         bool
	consecutiveHard int
}

// NewSpawner creates a spawner whose first obstacle waits first_delay.
func NewSpawner(cfg config.NomadObstacles, rng *core.Rand) *Spawner {
	return &Spawner{
		cfg:       cfg,
		rng:       rng,
		obstacles: make([]Obstacle, 0, 8),
		nextGap:   float64(cfg.FirstDelay),
	}
}

// Tick advances the spawn timer by the distance scrolled, spawns when the
// gap is reached, moves every obstacle, and purges the ones that left.
func (s *Spawner) Tick(dt, speed float64, ctx SpawnContext) SpawnResult {
	var res SpawnResult
	s.timer += speed

	if s.timer >= s.nextGap && ctx.Allowed {
		kind := s.selectKind(ctx)
		x := ctx.ViewportWidth + s.cfg.SpawnOffset
		s.obstacles = append(s.obstacles, NewObstacle(kind, x, ctx.GroundY, s.rng, s.cfg))
		s.timer = 0
		s.nextGap = s.computeGap(ctx)

		res = SpawnResult{Spawned: true, Kind: kind, NextGap: s.nextGap}
	}

	for i := range s.obstacles {
		s.obstacles[i].Tick(dt, speed, s.cfg.DespawnMargin)
	}

	active := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Active {
			active = append(active, o)
		}
	}
	s.obstacles = active

	return res
}

// available returns the weighted pool of kinds unlocked at score.
// Severe weather adds extra tumbleweed entries.
func (s *Spawner) available(score float64, severe bool) []ObstacleKind {
	pool := []ObstacleKind{KindCactus, KindRock}
	u := s.cfg.Unlocks
	if score >= float64(u.Snake) {
		pool = append(pool, KindSnake)
	}
	if score >= float64(u.Scorpion) {
		pool = append(pool, KindScorpion)
	}
	if score >= float64(u.Tumbleweed) {
		pool = append(pool, KindTumbleweed)
	}
	if score >= float64(u.Quicksand) {
		pool = append(pool, KindQuicksand)
	}
	if severe {
		for i := 0; i < s.cfg.SevereTumbleweedWeight; i++ {
			pool = append(pool, KindTumbleweed)
		}
	}
	return pool
}

// selectKind draws a kind, redrawing from the easy kinds once the
// consecutive-hard limit is reached.
func (s *Spawner) selectKind(ctx SpawnContext) ObstacleKind {
	pool := s.available(ctx.Score, ctx.SevereWeather)
	kind := pool[s.rng.Pick(len(pool))]

	if kind.IsHard() && s.consecutiveHard >= s.cfg.MaxConsecutiveHard {
		var easy []ObstacleKind
		seen := make(map[ObstacleKind]bool, len(pool))
		for _, k := range pool {
			if !k.IsHard() && !seen[k] {
				seen[k] = true
				easy = append(easy, k)
			}
		}
		kind = easy[s.rng.Pick(len(easy))]
	}

	if kind.IsHard() {
		s.consecutiveHard++
	} else {
		s.consecutiveHard = 0
	}
	s.lastKind = kind
	s.hasLast = true
	return kind
}

// computeGap sizes the distance to the next spawn. The result never
// drops below gap_floor_min.
func (s *Spawner) computeGap(ctx SpawnContext) float64 {
	lo := float64(s.cfg.GapMin)
	hi := float64(s.cfg.GapMax)

	if ctx.SessionTime < s.cfg.EarlyWindowMs {
		lo += float64(s.cfg.EarlyGapBonus)
		hi += float64(s.cfg.EarlyGapBonus)
	}

	widen := (1 - core.ClampF(ctx.Visibility, 0, 1)) * float64(s.cfg.WeatherGapBonus)
	lo += widen
	hi += widen

	reduction := config.GapReduction(ctx.Tier, s.cfg.DifficultyGapReduction)
	lo = math.Max(float64(s.cfg.GapFloorMin), lo-reduction)
	hi = math.Max(float64(s.cfg.GapFloorMax), hi-reduction)

	if s.consecutiveHard > 0 {
		lo += float64(s.cfg.RecoveryBonus)
	}
	hi = math.Max(hi, lo)

	gap := float64(s.rng.Int(int(math.Ceil(lo)), int(math.Floor(hi))))
	return math.Max(gap, float64(s.cfg.GapFloorMin))
}

// Obstacles returns the live obstacles in spawn order.
// The slice is owned by the spawner and valid until the next Tick.
func (s *Spawner) Obstacles() []Obstacle {
	return s.obstacles
}

// NextGap returns the distance required before the next spawn.
func (s *Spawner) NextGap() float64 {
	return s.nextGap
}

// ConsecutiveHard returns how many hard obstacles were spawned in a row.
func (s *Spawner) ConsecutiveHard() int {
	return s.consecutiveHard
}

// LastKind returns the most recently spawned kind.
func (s *Spawner) LastKind() (ObstacleKind, bool) {
	return s.lastKind, s.hasLast
}
