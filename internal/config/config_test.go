package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedPongDefaultParses(t *testing.T) {
	var cfg PongConfig
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		t.Fatalf("embedded pong default does not parse: %v", err)
	}

	if cfg.Court.Width <= 0 || cfg.Court.Height <= 0 {
		t.Errorf("invalid court dimensions: %+v", cfg.Court)
	}
	if cfg.Ball.MinSpeed <= 0 || cfg.Ball.MaxSpeed <= cfg.Ball.MinSpeed {
		t.Errorf("invalid ball speed bounds: %+v", cfg.Ball)
	}
	if cfg.Physics.WallDamping <= 0 || cfg.Physics.WallDamping >= 1.0 {
		t.Errorf("wall damping must be in (0, 1), got %v", cfg.Physics.WallDamping)
	}
	if cfg.Gameplay.WinScore <= 0 {
		t.Errorf("invalid win score: %d", cfg.Gameplay.WinScore)
	}
}

func TestEmbeddedSnakeDefaultParses(t *testing.T) {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		t.Fatalf("embedded snake default does not parse: %v", err)
	}

	if cfg.Grid.Size < 5 {
		t.Errorf("grid too small: %d", cfg.Grid.Size)
	}
	if cfg.Speed.MinInterval <= 0 || cfg.Speed.MinInterval > cfg.Speed.BaseInterval {
		t.Errorf("invalid speed curve: %+v", cfg.Speed)
	}
	if cfg.Grid.InitialLength < 1 {
		t.Errorf("invalid initial length: %d", cfg.Grid.InitialLength)
	}
}

func TestEmbeddedMatchesHardcodedDefaults(t *testing.T) {
	var pong PongConfig
	if err := yaml.Unmarshal(defaultPongYAML, &pong); err != nil {
		t.Fatal(err)
	}
	if pong != DefaultPongConfig() {
		t.Error("defaults/pong.yaml drifted from DefaultPongConfig()")
	}

	var snake SnakeConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &snake); err != nil {
		t.Fatal(err)
	}
	if snake != DefaultSnakeConfig() {
		t.Error("defaults/snake.yaml drifted from DefaultSnakeConfig()")
	}
}

func TestAITierSelection(t *testing.T) {
	tiers := DefaultPongConfig().AI

	if got := tiers.Tier(DifficultyEasy); got != tiers.Easy {
		t.Error("easy preset did not select easy tier")
	}
	if got := tiers.Tier(DifficultyHard); got != tiers.Hard {
		t.Error("hard preset did not select hard tier")
	}
	// Unknown presets fall back to normal.
	if got := tiers.Tier(""); got != tiers.Normal {
		t.Error("empty preset did not fall back to normal tier")
	}
}

func TestApplyPongPreset(t *testing.T) {
	cfg := DefaultPongConfig()

	base := DefaultPongConfig()

	ApplyPongPreset(&cfg, DifficultyHard)
	if cfg.Physics.SpeedIncreasePerHit <= base.Physics.SpeedIncreasePerHit {
		t.Errorf("hard preset should steepen the rally ramp, got %v", cfg.Physics.SpeedIncreasePerHit)
	}
	if cfg.Gameplay.ServeDelay >= base.Gameplay.ServeDelay {
		t.Errorf("hard preset should shorten the serve delay, got %v", cfg.Gameplay.ServeDelay)
	}

	cfg = DefaultPongConfig()
	ApplyPongPreset(&cfg, DifficultyEasy)
	if cfg.Physics.SpeedIncreasePerHit >= base.Physics.SpeedIncreasePerHit {
		t.Errorf("easy preset should soften the rally ramp, got %v", cfg.Physics.SpeedIncreasePerHit)
	}

	cfg = DefaultPongConfig()
	ApplyPongPreset(&cfg, DifficultyNormal)
	if cfg != base {
		t.Errorf("normal preset should leave defaults untouched: %+v", cfg)
	}
}

func TestApplySnakePreset(t *testing.T) {
	cfg := DefaultSnakeConfig()
	base := cfg.Speed.BaseInterval

	ApplySnakePreset(&cfg, DifficultyHard)
	if cfg.Speed.BaseInterval >= base {
		t.Errorf("hard preset should speed up movement, got %v", cfg.Speed.BaseInterval)
	}
	if cfg.Speed.BaseInterval < cfg.Speed.MinInterval {
		t.Errorf("preset interval %v below floor %v", cfg.Speed.BaseInterval, cfg.Speed.MinInterval)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
		{"", ""},
		{"nightmare", ""},
	}
	for _, tc := range tests {
		if got := ParsePreset(tc.in); got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if GetDefaultYAML("pong") == nil || GetDefaultYAML("snake") == nil {
		t.Error("missing embedded defaults")
	}
	if GetDefaultYAML("tetris") != nil {
		t.Error("unknown game should have no default YAML")
	}
}
