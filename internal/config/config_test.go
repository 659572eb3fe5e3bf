package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultNomadConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg := DefaultNomadConfig()
	if err := yaml.Unmarshal(GetDefaultYAML("nomad"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	def := DefaultNomadConfig()

	if cfg.Physics != def.Physics {
		t.Errorf("physics differ: embedded %+v, hardcoded %+v", cfg.Physics, def.Physics)
	}
	if cfg.Player != def.Player {
		t.Errorf("player differs: embedded %+v, hardcoded %+v", cfg.Player, def.Player)
	}
	if cfg.Obstacles != def.Obstacles {
		t.Errorf("obstacles differ: embedded %+v, hardcoded %+v", cfg.Obstacles, def.Obstacles)
	}
	if cfg.Weather != def.Weather {
		t.Errorf("weather differs: embedded %+v, hardcoded %+v", cfg.Weather, def.Weather)
	}
	if len(cfg.Difficulty.Tiers) != len(def.Difficulty.Tiers) {
		t.Fatalf("tier count: embedded %d, hardcoded %d", len(cfg.Difficulty.Tiers), len(def.Difficulty.Tiers))
	}
	for i := range cfg.Difficulty.Tiers {
		if cfg.Difficulty.Tiers[i] != def.Difficulty.Tiers[i] {
			t.Errorf("tier %d: embedded %+v, hardcoded %+v", i, cfg.Difficulty.Tiers[i], def.Difficulty.Tiers[i])
		}
	}
}

func TestLoadCustomPathOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nomad.yaml")
	data := []byte("physics:\n  gravity: 0.8\nweather:\n  enabled: false\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadNomad(path)
	if err != nil {
		t.Fatalf("LoadNomad: %v", err)
	}
	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("gravity = %v, expected 0.8", cfg.Physics.Gravity)
	}
	if cfg.Weather.Enabled {
		t.Error("weather should be disabled by the override")
	}
	// Untouched values keep their defaults
	if cfg.Physics.JumpForce != -14 {
		t.Errorf("jump_force = %v, expected default -14", cfg.Physics.JumpForce)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadNomad(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadNomad(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("physics:\n  gravity: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadNomad(invalid)
	if err == nil || !strings.Contains(err.Error(), "physics.gravity") {
		t.Errorf("expected gravity validation error, got %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })

	// No files anywhere: embedded defaults
	cfg, err := LoadNomad("")
	if err != nil {
		t.Fatalf("LoadNomad: %v", err)
	}
	if cfg.Physics.Gravity != DefaultNomadConfig().Physics.Gravity {
		t.Errorf("expected default gravity, got %v", cfg.Physics.Gravity)
	}

	// Local configs directory
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "nomad.yaml"), []byte("physics:\n  gravity: 0.7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadNomad("")
	if cfg.Physics.Gravity != 0.7 {
		t.Errorf("expected local gravity 0.7, got %v", cfg.Physics.Gravity)
	}

	// User directory wins over the local one
	userDir := filepath.Join(home, ".nomad", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "nomad.yaml"), []byte("physics:\n  gravity: 0.9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadNomad("")
	if cfg.Physics.Gravity != 0.9 {
		t.Errorf("expected user gravity 0.9, got %v", cfg.Physics.Gravity)
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	cfg := DefaultNomadConfig()
	cfg.Physics.Gravity = 0
	cfg.Player.DuckHeight = cfg.Player.Height
	cfg.Obstacles.GapMin = cfg.Obstacles.GapMax + 1
	cfg.Weather.Effects.Sandstorm.Visibility = 2

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, field := range []string{"physics.gravity", "player.duck_height", "obstacles.gap_min", "sandstorm.visibility"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
}

func TestValidateTierOrder(t *testing.T) {
	tests := []struct {
		name    string
		tiers   []Tier
		wantErr bool
	}{
		{"rising", []Tier{{Score: 0, SpeedMult: 1}, {Score: 500, SpeedMult: 1.2}}, false},
		{"flat", []Tier{{Score: 0, SpeedMult: 1}, {Score: 500, SpeedMult: 1}}, false},
		{"listed out of order", []Tier{{Score: 500, SpeedMult: 1.2}, {Score: 0, SpeedMult: 1}}, false},
		{"falls", []Tier{{Score: 0, SpeedMult: 1.5}, {Score: 500, SpeedMult: 1.2}}, true},
		{"falls once sorted", []Tier{{Score: 1000, SpeedMult: 1.1}, {Score: 0, SpeedMult: 1}, {Score: 500, SpeedMult: 1.3}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultNomadConfig()
			cfg.Difficulty.Tiers = tt.tiers
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "speed_mult drops") {
				t.Errorf("error %q does not name the falling tier", err)
			}
		})
	}
}

func TestApplyPresets(t *testing.T) {
	def := DefaultNomadConfig()

	easy := DefaultNomadConfig()
	ApplyNomadPreset(&easy, DifficultyEasy)
	if easy.Obstacles.GapMin <= def.Obstacles.GapMin || easy.Obstacles.GapFloorMin <= def.Obstacles.GapFloorMin {
		t.Error("easy preset should widen gaps")
	}
	if easy.Weather.RampMs <= def.Weather.RampMs {
		t.Error("easy preset should slow the weather ramp")
	}

	hard := DefaultNomadConfig()
	ApplyNomadPreset(&hard, DifficultyHard)
	if hard.Difficulty.Tiers[0].SpeedMult != def.Difficulty.Tiers[0].SpeedMult {
		t.Error("hard preset should leave the first tier alone")
	}
	if hard.Difficulty.Tiers[4].SpeedMult <= def.Difficulty.Tiers[4].SpeedMult {
		t.Error("hard preset should raise tier multipliers")
	}
	if hard.Weather.RampMs >= def.Weather.RampMs {
		t.Error("hard preset should shorten the weather ramp")
	}
	// Preset must not alias the default slice
	if def.Difficulty.Tiers[4].SpeedMult != 1.7 {
		t.Error("hard preset modified shared tiers")
	}

	fixed := DefaultNomadConfig()
	ApplyNomadPreset(&fixed, DifficultyFixed)
	if len(fixed.Difficulty.Tiers) != 1 || fixed.Difficulty.Tiers[0].Label != "Calm" {
		t.Errorf("fixed preset tiers = %+v, expected only Calm", fixed.Difficulty.Tiers)
	}

	normal := DefaultNomadConfig()
	ApplyNomadPreset(&normal, DifficultyNormal)
	if normal.Obstacles != def.Obstacles || normal.Weather != def.Weather {
		t.Error("normal preset should not change the config")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
		{"fixed", DifficultyFixed},
		{"", ""},
		{"insane", ""},
	}
	for _, tt := range tests {
		if got := ParsePreset(tt.in); got != tt.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := DefaultNomadConfig().Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), "jump_force: -14") {
		t.Errorf("marshalled YAML missing jump_force:\n%s", data)
	}
}
