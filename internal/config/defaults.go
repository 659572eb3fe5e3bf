package config

import (
	_ "embed"
)

//go:embed defaults/nomad.yaml
var defaultNomadYAML []byte

// DefaultNomadConfig returns the default Desert Nomad configuration.
func DefaultNomadConfig() NomadConfig {
	return NomadConfig{
		Physics: NomadPhysics{
			Gravity:         0.6,
			JumpForce:       -14,
			DoubleJumpForce: -11,
			EscapeFactor:    0.7,
			MaxFallSpeed:    20,
			BaseSpeed:       4,
			MaxSpeed:        14,
			SpeedIncrement:  0.0003,
			SpeedLerp:       0.01,
			ScoreRate:       0.1,
		},
		Player: NomadPlayer{
			LaneX:         100,
			Width:         50,
			Height:        70,
			DuckHeight:    35,
			HitboxPadding: 8,
			CoyoteMs:      100,
			CoyoteMaxFall: 6,
			DriftMinX:     50,
			DriftMaxX:     150,
			ReturnLerp:    0.1,
		},
		Obstacles: NomadObstacles{
			GapMin:                 450,
			GapMax:                 750,
			GapFloorMin:            350,
			GapFloorMax:            500,
			FirstDelay:             200,
			RecoveryBonus:          200,
			EarlyWindowMs:          20000,
			EarlyGapBonus:          150,
			WeatherGapBonus:        200,
			DifficultyGapReduction: 250,
			MaxConsecutiveHard:     1,
			SevereTumbleweedWeight: 2,
			SpawnOffset:            50,
			DespawnMargin:          50,
			WarningDistance:        300,
			TumbleweedElevationMin: 70,
			TumbleweedElevationMax: 88,
			Unlocks: UnlockConfig{
				Snake:      500,
				Scorpion:   1500,
				Tumbleweed: 2000,
				Quicksand:  3500,
			},
		},
		Weather: WeatherConfig{
			Enabled:              true,
			ChangeIntervalMs:     20000,
			TransitionMs:         3000,
			GraceMs:              10000,
			RampMs:               35000,
			MaxSevereMs:          15000,
			AnnouncementMs:       2500,
			WindAmbientThreshold: 2,
			WindAmbientChance:    0.02,
			Effects: WeatherEffects{
				Clear:     EffectConfig{JumpMod: 1, GravityMod: 1, WindForce: 0, SpeedMod: 1, Visibility: 1},
				Wind:      EffectConfig{JumpMod: 1, GravityMod: 0.8, WindForce: 0.9, SpeedMod: 1, Visibility: 0.9},
				Heatwave:  EffectConfig{JumpMod: 0.9, GravityMod: 1, WindForce: 0, SpeedMod: 1.05, Visibility: 0.95},
				Sandstorm: EffectConfig{JumpMod: 0.95, GravityMod: 1, WindForce: -4.8, SpeedMod: 0.9, Visibility: 0.4},
			},
		},
		Difficulty: DifficultyConfig{
			Tiers: []Tier{
				{Score: 0, SpeedMult: 1.0, Label: "Calm"},
				{Score: 500, SpeedMult: 1.1, Label: "Easy"},
				{Score: 1500, SpeedMult: 1.25, Label: "Medium"},
				{Score: 3000, SpeedMult: 1.45, Label: "Hard"},
				{Score: 5000, SpeedMult: 1.7, Label: "Expert"},
			},
		},
		Viewport: ViewportConfig{
			CellWidth:    10,
			CellHeight:   20,
			GroundOffset: 100,
		},
		Audio: AudioConfig{
			Enabled:        true,
			Volume:         0.5,
			SampleRate:     44100,
			WindThrottleMs: 300,
		},
		Session: SessionConfig{
			MaxDtMs:    50,
			DuckHoldMs: 500,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "nomad", "nomad_calm":
		return defaultNomadYAML
	default:
		return nil
	}
}
