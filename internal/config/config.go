// Package config provides YAML-based game configuration loading and
// difficulty management for Desert Nomad.
package config

// NomadConfig contains all configuration for the Desert Nomad runner.
type NomadConfig struct {
	Physics    NomadPhysics     `yaml:"physics"`
	Player     NomadPlayer      `yaml:"player"`
	Obstacles  NomadObstacles   `yaml:"obstacles"`
	Weather    WeatherConfig    `yaml:"weather"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Viewport   ViewportConfig   `yaml:"viewport"`
	Audio      AudioConfig      `yaml:"audio"`
	Session    SessionConfig    `yaml:"session"`
}

// NomadPhysics defines per-tick physics and scroll speed parameters.
// Forces and velocities are in world units per tick.
type NomadPhysics struct {
	Gravity         float64 `yaml:"gravity"`
	JumpForce       float64 `yaml:"jump_force"`        // Negative = upward
	DoubleJumpForce float64 `yaml:"double_jump_force"` // Negative = upward
	EscapeFactor    float64 `yaml:"escape_factor"`     // Fraction of jump_force used to leave a hazard
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
	BaseSpeed       float64 `yaml:"base_speed"`
	MaxSpeed        float64 `yaml:"max_speed"`
	SpeedIncrement  float64 `yaml:"speed_increment"` // Added per millisecond
	SpeedLerp       float64 `yaml:"speed_lerp"`      // Per-tick smoothing toward the tier speed
	ScoreRate       float64 `yaml:"score_rate"`      // Score gained per unit of speed per tick
}

// NomadPlayer defines the traveller's body, hitbox and movement limits.
type NomadPlayer struct {
	LaneX         float64 `yaml:"lane_x"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	DuckHeight    float64 `yaml:"duck_height"`
	HitboxPadding float64 `yaml:"hitbox_padding"`
	CoyoteMs      float64 `yaml:"coyote_ms"`
	CoyoteMaxFall float64 `yaml:"coyote_max_fall"`
	DriftMinX     float64 `yaml:"drift_min_x"`
	DriftMaxX     float64 `yaml:"drift_max_x"`
	ReturnLerp    float64 `yaml:"return_lerp"` // Per-tick easing back to lane_x while grounded
}

// NomadObstacles defines spawn spacing, fairness and unlock rules.
// Gaps are distances in world units.
type NomadObstacles struct {
	GapMin                 int          `yaml:"gap_min"`
	GapMax                 int          `yaml:"gap_max"`
	GapFloorMin            int          `yaml:"gap_floor_min"`
	GapFloorMax            int          `yaml:"gap_floor_max"`
	FirstDelay             int          `yaml:"first_delay"`
	RecoveryBonus          int          `yaml:"recovery_bonus"`
	EarlyWindowMs          float64      `yaml:"early_window_ms"`
	EarlyGapBonus          int          `yaml:"early_gap_bonus"`
	WeatherGapBonus        int          `yaml:"weather_gap_bonus"`
	DifficultyGapReduction float64      `yaml:"difficulty_gap_reduction"`
	MaxConsecutiveHard     int          `yaml:"max_consecutive_hard"`
	SevereTumbleweedWeight int          `yaml:"severe_tumbleweed_weight"`
	SpawnOffset            float64      `yaml:"spawn_offset"`
	DespawnMargin          float64      `yaml:"despawn_margin"`
	WarningDistance        float64      `yaml:"warning_distance"`
	TumbleweedElevationMin int          `yaml:"tumbleweed_elevation_min"`
	TumbleweedElevationMax int          `yaml:"tumbleweed_elevation_max"`
	Unlocks                UnlockConfig `yaml:"unlocks"`
}

// UnlockConfig holds the score at which each advanced obstacle appears.
// Cactus and rock are always available.
type UnlockConfig struct {
	Snake      int `yaml:"snake"`
	Scorpion   int `yaml:"scorpion"`
	Tumbleweed int `yaml:"tumbleweed"`
	Quicksand  int `yaml:"quicksand"`
}

// WeatherConfig defines the weather rotation timing and per-kind effects.
// Durations are in milliseconds of simulation time.
type WeatherConfig struct {
	Enabled              bool           `yaml:"enabled"`
	ChangeIntervalMs     float64        `yaml:"change_interval_ms"`
	TransitionMs         float64        `yaml:"transition_ms"`
	GraceMs              float64        `yaml:"grace_ms"`
	RampMs               float64        `yaml:"ramp_ms"`
	MaxSevereMs          float64        `yaml:"max_severe_ms"`
	AnnouncementMs       float64        `yaml:"announcement_ms"`
	WindAmbientThreshold float64        `yaml:"wind_ambient_threshold"`
	WindAmbientChance    float64        `yaml:"wind_ambient_chance"`
	Effects              WeatherEffects `yaml:"effects"`
}

// WeatherEffects holds the full-strength effect of each weather kind.
type WeatherEffects struct {
	Clear     EffectConfig `yaml:"clear"`
	Wind      EffectConfig `yaml:"wind"`
	Heatwave  EffectConfig `yaml:"heatwave"`
	Sandstorm EffectConfig `yaml:"sandstorm"`
}

// EffectConfig is the set of gameplay modifiers a weather kind applies.
type EffectConfig struct {
	JumpMod    float64 `yaml:"jump_mod"`
	GravityMod float64 `yaml:"gravity_mod"`
	WindForce  float64 `yaml:"wind_force"`
	SpeedMod   float64 `yaml:"speed_mod"`
	Visibility float64 `yaml:"visibility"`
}

// DifficultyConfig defines the score tiers.
type DifficultyConfig struct {
	Tiers []Tier `yaml:"tiers"`
}

// Tier is one step of the difficulty ladder.
type Tier struct {
	Score     int     `yaml:"score"`      // Minimum score for this tier
	SpeedMult float64 `yaml:"speed_mult"` // Multiplier applied to the base speed
	Label     string  `yaml:"label"`
}

// ViewportConfig maps terminal cells to world units.
type ViewportConfig struct {
	CellWidth    float64 `yaml:"cell_width"`
	CellHeight   float64 `yaml:"cell_height"`
	GroundOffset float64 `yaml:"ground_offset"` // Distance from the bottom edge to the ground line
}

// AudioConfig controls the sound effects.
type AudioConfig struct {
	Enabled        bool    `yaml:"enabled"`
	Volume         float64 `yaml:"volume"` // 0.0 - 1.0
	SampleRate     int     `yaml:"sample_rate"`
	WindThrottleMs int     `yaml:"wind_throttle_ms"`
}

// SessionConfig holds tick and input handling parameters.
type SessionConfig struct {
	MaxDtMs      float64 `yaml:"max_dt_ms"`
	DuckHoldMs   float64 `yaml:"duck_hold_ms"` // Terminals have no key-up, a duck press is held this long
	DebugOverlay bool    `yaml:"debug_overlay"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset.
// Unknown values return an empty preset, meaning the config is used as-is.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
