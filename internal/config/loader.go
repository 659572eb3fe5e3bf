package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// LoadNomad loads Desert Nomad configuration.
// Search order: customPath -> ~/.nomad/configs/nomad.yaml -> ./configs/nomad.yaml -> embedded default
// Files only need to list the values they override.
func LoadNomad(customPath string) (NomadConfig, error) {
	cfg := DefaultNomadConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("nomad.yaml"), filepath.Join("configs", "nomad.yaml")} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultNomadYAML, &cfg); err != nil {
		return DefaultNomadConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unparsable or invalid
// files are skipped so the next source in the search order is used.
func tryLoad(path string) (NomadConfig, bool) {
	cfg := DefaultNomadConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nomad", "configs", filename)
}

// Marshal renders the configuration as YAML.
func (c NomadConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// ApplyNomadPreset modifies the config based on a difficulty preset.
func ApplyNomadPreset(cfg *NomadConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.GapMin += 100
		cfg.Obstacles.GapMax += 100
		cfg.Obstacles.GapFloorMin += 50
		cfg.Obstacles.GapFloorMax += 50
		cfg.Weather.RampMs *= 1.5
	case DifficultyHard:
		tiers := make([]Tier, len(cfg.Difficulty.Tiers))
		for i, t := range cfg.Difficulty.Tiers {
			if i > 0 {
				t.SpeedMult *= 1.1
			}
			tiers[i] = t
		}
		cfg.Difficulty.Tiers = tiers
		cfg.Weather.RampMs *= 0.7
	case DifficultyFixed:
		tiers := NewDifficultyModel(cfg.Difficulty.Tiers).Tiers()
		cfg.Difficulty.Tiers = tiers[:1]
	}
}

// Validate checks every field that the simulation relies on and reports
// all problems at once.
func (c NomadConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	p := c.Physics
	check(p.Gravity > 0, "physics.gravity must be positive, got %v", p.Gravity)
	check(p.JumpForce < 0, "physics.jump_force must be negative, got %v", p.JumpForce)
	check(p.DoubleJumpForce < 0, "physics.double_jump_force must be negative, got %v", p.DoubleJumpForce)
	check(p.EscapeFactor > 0 && p.EscapeFactor <= 1, "physics.escape_factor must be in (0, 1], got %v", p.EscapeFactor)
	check(p.MaxFallSpeed > 0, "physics.max_fall_speed must be positive, got %v", p.MaxFallSpeed)
	check(p.BaseSpeed > 0, "physics.base_speed must be positive, got %v", p.BaseSpeed)
	check(p.MaxSpeed >= p.BaseSpeed, "physics.max_speed %v is below base_speed %v", p.MaxSpeed, p.BaseSpeed)
	check(p.SpeedLerp > 0 && p.SpeedLerp <= 1, "physics.speed_lerp must be in (0, 1], got %v", p.SpeedLerp)

	pl := c.Player
	check(pl.Width > 0 && pl.Height > 0, "player size must be positive, got %vx%v", pl.Width, pl.Height)
	check(pl.DuckHeight > 0 && pl.DuckHeight < pl.Height, "player.duck_height must be in (0, height), got %v", pl.DuckHeight)
	check(pl.HitboxPadding >= 0, "player.hitbox_padding must not be negative, got %v", pl.HitboxPadding)
	check(pl.DriftMinX <= pl.LaneX && pl.LaneX <= pl.DriftMaxX, "player.lane_x %v is outside the drift range [%v, %v]", pl.LaneX, pl.DriftMinX, pl.DriftMaxX)
	check(pl.ReturnLerp >= 0 && pl.ReturnLerp <= 1, "player.return_lerp must be in [0, 1], got %v", pl.ReturnLerp)

	o := c.Obstacles
	check(o.GapMin > 0 && o.GapMin <= o.GapMax, "obstacles.gap_min/gap_max must satisfy 0 < min <= max, got %d/%d", o.GapMin, o.GapMax)
	check(o.GapFloorMin > 0 && o.GapFloorMin <= o.GapFloorMax, "obstacles.gap_floor_min/gap_floor_max must satisfy 0 < min <= max, got %d/%d", o.GapFloorMin, o.GapFloorMax)
	check(o.MaxConsecutiveHard >= 1, "obstacles.max_consecutive_hard must be at least 1, got %d", o.MaxConsecutiveHard)
	check(o.TumbleweedElevationMin <= o.TumbleweedElevationMax, "obstacles.tumbleweed_elevation_min %d exceeds max %d", o.TumbleweedElevationMin, o.TumbleweedElevationMax)

	w := c.Weather
	check(w.ChangeIntervalMs > 0, "weather.change_interval_ms must be positive, got %v", w.ChangeIntervalMs)
	check(w.TransitionMs > 0, "weather.transition_ms must be positive, got %v", w.TransitionMs)
	check(w.GraceMs >= 0, "weather.grace_ms must not be negative, got %v", w.GraceMs)
	check(w.MaxSevereMs > 0, "weather.max_severe_ms must be positive, got %v", w.MaxSevereMs)
	for _, k := range []struct {
		name string
		e    EffectConfig
	}{
		{"clear", w.Effects.Clear},
		{"wind", w.Effects.Wind},
		{"heatwave", w.Effects.Heatwave},
		{"sandstorm", w.Effects.Sandstorm},
	} {
		name, e := k.name, k.e
		check(e.JumpMod > 0 && e.GravityMod > 0 && e.SpeedMod > 0, "weather.effects.%s modifiers must be positive", name)
		check(e.Visibility >= 0 && e.Visibility <= 1, "weather.effects.%s.visibility must be in [0, 1], got %v", name, e.Visibility)
	}

	for i, t := range c.Difficulty.Tiers {
		check(t.SpeedMult > 0, "difficulty.tiers[%d].speed_mult must be positive, got %v", i, t.SpeedMult)
		check(t.Score >= 0, "difficulty.tiers[%d].score must not be negative, got %d", i, t.Score)
	}
	byScore := append([]Tier(nil), c.Difficulty.Tiers...)
	sort.SliceStable(byScore, func(i, j int) bool { return byScore[i].Score < byScore[j].Score })
	for i := 1; i < len(byScore); i++ {
		prev, t := byScore[i-1], byScore[i]
		check(t.SpeedMult >= prev.SpeedMult, "difficulty.tiers: speed_mult drops from %v at score %d to %v at score %d",
			prev.SpeedMult, prev.Score, t.SpeedMult, t.Score)
	}

	check(c.Viewport.CellWidth > 0 && c.Viewport.CellHeight > 0, "viewport cell size must be positive")
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be in [0, 1], got %v", c.Audio.Volume)
	check(c.Session.MaxDtMs > 0, "session.max_dt_ms must be positive, got %v", c.Session.MaxDtMs)

	return errors.Join(errs...)
}
