package nomad

import (
	"testing"

	"github.com/vovakirdan/desert-nomad/internal/config"
	"github.com/vovakirdan/desert-nomad/internal/core"
)

func testSpawnContext() SpawnContext {
	tiers := config.DefaultNomadConfig().Difficulty.Tiers
	return SpawnContext{
		Allowed:       true,
		Tier:          tiers[0],
		Visibility:    1,
		SessionTime:   60000,
		ViewportWidth: 800,
		GroundY:       testGround,
	}
}

func TestSpawnerFirstDelay(t *testing.T) {
	cfg := config.DefaultNomadConfig().Obstacles
	s := NewSpawner(cfg, core.NewRand(1))
	ctx := testSpawnContext()

	// 4 units per tick reaches the 200 unit delay on tick 50
	for i := 1; i < 50; i++ {
		if s.Tick(16, 4, ctx).Spawned {
			t.Fatalf("Spawned on tick %d, before first_delay", i)
		}
	}
	res := s.Tick(16, 4, ctx)
	if !res.Spawned {
		t.Fatal("Expected a spawn once first_delay was covered")
	}
	if len(s.Obstacles()) != 1 {
		t.Fatalf("Obstacles = %d, want 1", len(s.Obstacles()))
	}
	if res.NextGap != s.NextGap() {
		t.Errorf("Result gap %f != NextGap %f", res.NextGap, s.NextGap())
	}
}

func TestSpawnerTutorialGate(t *testing.T) {
	cfg := config.DefaultNomadConfig().Obstacles
	s := NewSpawner(cfg, core.NewRand(1))
	ctx := testSpawnContext()
	ctx.Allowed = false

	for i := 0; i < 1000; i++ {
		if s.Tick(16, 4, ctx).Spawned {
			t.Fatal("Spawned while the gate was closed")
		}
	}
	if len(s.Obstacles()) != 0 {
		t.Errorf("Obstacles = %d, want 0", len(s.Obstacles()))
	}

	ctx.Allowed = true
	if !s.Tick(16, 4, ctx).Spawned {
		t.Error("Expected an immediate spawn once the gate opened")
	}
}

func TestSpawnerSpawnPosition(t *testing.T) {
	cfg := config.DefaultNomadConfig().Obstacles
	s := NewSpawner(cfg, core.NewRand(1))
	ctx := testSpawnContext()

	for !s.Tick(16, 4, ctx).Spawned {
	}
	o := s.Obstacles()[0]
	// Spawned off screen, then moved once in the same tick
	if want := ctx.ViewportWidth + cfg.SpawnOffset - 4*o.SpeedMult; o.X != want {
		t.Errorf("X = %f, want %f", o.X, want)
	}
}

func TestSpawnerGapNeverBelowFloor(t *testing.T) {
	cfg := config.DefaultNomadConfig().Obstacles
	tiers := append(config.DefaultNomadConfig().Difficulty.Tiers, config.Tier{Score: 99999, SpeedMult: 10, Label: "Absurd"})

	for _, tier := range tiers {
		for _, vis := range []float64{0, 0.4, 1} {
			for _, session := range []float64{0, 60000} {
				for _, hard := range []int{0, 1, 2} {
					s := NewSpawner(cfg, core.NewRand(int64(hard)))
					s.consecutiveHard = hard
					ctx := testSpawnContext()
					ctx.Tier = tier
					ctx.Visibility = vis
					ctx.SessionTime = session

					for i := 0; i < 50; i++ {
						gap := s.computeGap(ctx)
						if gap < float64(cfg.GapFloorMin) {
							t.Fatalf("tier=%s vis=%.1f session=%.0f hard=%d: gap %f below floor %d",
								tier.Label, vis, session, hard, gap, cfg.GapFloorMin)
						}
						if hard > 0 && gap < float64(cfg.GapFloorMin+cfg.RecoveryBonus) {
							t.Fatalf("tier=%s hard=%d: gap %f missing recovery bonus", tier.Label, hard, gap)
						}
					}
				}
			}
		}
	}
}

func TestSpawnerGapRanges(t *testing.T) {
	cfg := config.DefaultNomadConfig().Obstacles
	tiers := config.DefaultNomadConfig().Difficulty.Tiers

	tests := []struct {
		name   string
		tier   config.Tier
		vis    float64
		early  bool
		lo, hi float64
	}{
		{"calm", tiers[0], 1, false, 450, 750},
		{"early", tiers[0], 1, true, 600, 900},
		{"blind", tiers[0], 0, false, 650, 950},
		{"expert", config.Tier{SpeedMult: 2}, 1, false, 350, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpawner(cfg, core.NewRand(9))
			ctx := testSpawnContext()
			ctx.Tier = tt.tier
			ctx.Visibility = tt.vis
			if tt.early {
				ctx.SessionTime = 0
			}
			for i := 0; i < 200; i++ {
				gap := s.computeGap(ctx)
				if gap < tt.lo || gap > tt.hi {
					t.Fatalf("gap %f outside [%f, %f]", gap, tt.lo, tt.hi)
				}
			}
		})
	}
}

func TestSpawnerConsecutiveHardLimit(t *testing.T) {
	cfg := config.DefaultNomadConfig().Obstacles
	cfg.Unlocks = config.UnlockConfig{}
	cfg.SevereTumbleweedWeight = 20 // Pool is almost all hard

	s := NewSpawner(cfg, core.NewRand(4))
	ctx := testSpawnContext()
	ctx.Score = 10000
	ctx.SevereWeather = true

	run := 0
	sawHard := false
	for i := 0; i < 2000; i++ {
		kind := s.selectKind(ctx)
		if kind.IsHard() {
			sawHard = true
			run++
		} else {
			run = 0
		}
		if run > cfg.MaxConsecutiveHard {
			t.Fatalf("Draw %d: %d hard obstacles in a row", i, run)
		}
		if s.ConsecutiveHard() != run {
			t.Fatalf("ConsecutiveHard = %d, want %d", s.ConsecutiveHard(), run)
		}
	}
	if !sawHard {
		t.Error("Expected hard obstacles in the draw")
	}
}

func TestSpawnerDefaultsNeverRepeatHard(t *testing.T) {
	cfg := config.DefaultNomadConfig().Obstacles
	if cfg.MaxConsecutiveHard != 1 {
		t.Fatalf("MaxConsecutiveHard = %d, want 1", cfg.MaxConsecutiveHard)
	}

	tests := []struct {
		name   string
		score  float64
		severe bool
	}{
		{"all unlocked", 10000, false},
		{"severe weather", 10000, true},
		{"tumbleweed only", float64(cfg.Unlocks.Tumbleweed), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpawner(cfg, core.NewRand(11))
			ctx := testSpawnContext()
			ctx.Score = tt.score
			ctx.SevereWeather = tt.severe

			prev := KindCactus
			for i := 0; i < 5000; i++ {
				kind := s.selectKind(ctx)
				if kind.IsHard() && prev.IsHard() {
					t.Fatalf("Draw %d: %v follows %v", i, kind, prev)
				}
				prev = kind
			}
		})
	}
}

func TestSpawnerUnlocks(t *testing.T) {
	cfg := config.DefaultNomadConfig().Obstacles
	s := NewSpawner(cfg, core.NewRand(1))

	count := func(pool []ObstacleKind, kind ObstacleKind) int {
		n := 0
		for _, k := range pool {
			if k == kind {
				n++
			}
		}
		return n
	}

	tests := []struct {
		score  float64
		severe bool
		kind   ObstacleKind
		want   int
	}{
		{0, false, KindSnake, 0},
		{float64(cfg.Unlocks.Snake), false, KindSnake, 1},
		{float64(cfg.Unlocks.Tumbleweed) - 1, false, KindTumbleweed, 0},
		{float64(cfg.Unlocks.Tumbleweed), false, KindTumbleweed, 1},
		{0, true, KindTumbleweed, cfg.SevereTumbleweedWeight},
		{float64(cfg.Unlocks.Tumbleweed), true, KindTumbleweed, 1 + cfg.SevereTumbleweedWeight},
		{float64(cfg.Unlocks.Quicksand), false, KindQuicksand, 1},
	}

	for _, tt := range tests {
		pool := s.available(tt.score, tt.severe)
		if got := count(pool, tt.kind); got != tt.want {
			t.Errorf("score=%.0f severe=%v: %v weight %d, want %d", tt.score, tt.severe, tt.kind, got, tt.want)
		}
		if count(pool, KindCactus) != 1 || count(pool, KindRock) != 1 {
			t.Errorf("score=%.0f: cactus and rock should always be available", tt.score)
		}
	}
}

func TestSpawnerPurgeKeepsOrder(t *testing.T) {
	cfg := config.DefaultNomadConfig().Obstacles
	s := NewSpawner(cfg, core.NewRand(1))
	rng := core.NewRand(2)

	for _, x := range []float64{-75, 100, -80, 300, 500} {
		s.obstacles = append(s.obstacles, NewObstacle(KindCactus, x, testGround, rng, cfg))
	}

	ctx := testSpawnContext()
	ctx.Allowed = false
	s.Tick(16, 10, ctx)

	got := s.Obstacles()
	want := []float64{90, 290, 490}
	if len(got) != len(want) {
		t.Fatalf("Obstacles = %d, want %d", len(got), len(want))
	}
	for i, o := range got {
		if o.X != want[i] {
			t.Errorf("Obstacle %d X = %f, want %f", i, o.X, want[i])
		}
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	cfg := config.DefaultNomadConfig().Obstacles
	a := NewSpawner(cfg, core.NewRand(77))
	b := NewSpawner(cfg, core.NewRand(77))
	ctx := testSpawnContext()

	for i := 0; i < 3000; i++ {
		ctx.Score = float64(i)
		ra := a.Tick(16, 6, ctx)
		rb := b.Tick(16, 6, ctx)
		if ra != rb {
			t.Fatalf("Tick %d: results differ %+v vs %+v", i, ra, rb)
		}
	}
	if len(a.Obstacles()) != len(b.Obstacles()) {
		t.Fatal("Obstacle counts differ")
	}
	for i := range a.Obstacles() {
		if a.Obstacles()[i] != b.Obstacles()[i] {
			t.Errorf("Obstacle %d differs", i)
		}
	}
}
