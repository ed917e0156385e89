// Package config provides YAML-based game configuration loading and
// difficulty management for the simulation engines.
package config

// PongConfig contains all tunable parameters for the Pong engine.
// Court units are pixels; speeds are pixels per second.
type PongConfig struct {
	Court   PongCourt   `yaml:"court"`
	Paddle  PongPaddle  `yaml:"paddle"`
	Ball    PongBall    `yaml:"ball"`
	Physics PongPhysics `yaml:"physics"`
	Gameplay PongGameplay `yaml:"gameplay"`
	AI       PongAITiers  `yaml:"ai"`
}

// PongCourt defines the court dimensions.
type PongCourt struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PongPaddle defines paddle geometry and kinematics.
type PongPaddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Offset       float64 `yaml:"offset"` // Distance from court edge
	Speed        float64 `yaml:"speed"`
	Acceleration float64 `yaml:"acceleration"`
}

// PongBall defines ball geometry and speed bounds.
type PongBall struct {
	Radius     float64 `yaml:"radius"`
	ServeSpeed float64 `yaml:"serve_speed"`
	MinSpeed   float64 `yaml:"min_speed"`
	MaxSpeed   float64 `yaml:"max_speed"`
}

// PongPhysics defines collision response parameters.
type PongPhysics struct {
	MaxBounceDeg        float64 `yaml:"max_bounce_deg"`         // Max bounce angle off a paddle
	SpinFactor          float64 `yaml:"spin_factor"`            // Paddle velocity carried into ball vy
	SpeedIncreasePerHit float64 `yaml:"speed_increase_per_hit"` // Rally speed ramp per paddle hit
	MaxSpeedMultiplier  float64 `yaml:"max_speed_multiplier"`   // Rally ramp cap
	WallDamping         float64 `yaml:"wall_damping"`           // Vertical damping on wall bounce, < 1.0
}

// PongGameplay defines scoring rules.
type PongGameplay struct {
	WinScore   int     `yaml:"win_score"`
	ServeDelay float64 `yaml:"serve_delay"` // Seconds between goal and next serve
}

// AITier defines one opponent skill tier.
type AITier struct {
	ReactionTime       float64 `yaml:"reaction_time"`       // Seconds between target re-reads
	PredictionAccuracy float64 `yaml:"prediction_accuracy"` // 0..1, 1 = perfect
	SpeedMultiplier    float64 `yaml:"speed_multiplier"`    // Fraction of human paddle speed
	ErrorMargin        float64 `yaml:"error_margin"`        // Max aim error in pixels at accuracy 0
	MakeMistakes       bool    `yaml:"make_mistakes"`
	MistakeChance      float64 `yaml:"mistake_chance"` // Per-prediction probability of a misread
}

// PongAITiers holds the opponent configuration per difficulty preset.
type PongAITiers struct {
	Easy   AITier `yaml:"easy"`
	Normal AITier `yaml:"normal"`
	Hard   AITier `yaml:"hard"`
}

// Tier returns the AI tier for a difficulty preset.
// Unknown presets fall back to normal.
func (t PongAITiers) Tier(preset DifficultyPreset) AITier {
	switch preset {
	case DifficultyEasy:
		return t.Easy
	case DifficultyHard:
		return t.Hard
	default:
		return t.Normal
	}
}

// SnakeConfig contains all tunable parameters for the Snake engine.
// Grid units are cells; intervals are seconds.
type SnakeConfig struct {
	Grid    SnakeGrid    `yaml:"grid"`
	Speed   SnakeSpeed   `yaml:"speed"`
	Scoring SnakeScoring `yaml:"scoring"`
	Food    SnakeFood    `yaml:"food"`
}

// SnakeGrid defines the play field.
type SnakeGrid struct {
	Size          int  `yaml:"size"`           // Square grid, cells per side
	WallsWrap     bool `yaml:"walls_wrap"`     // Wrap mode instead of fatal walls
	InitialLength int  `yaml:"initial_length"` // Starting segment count
}

// SnakeSpeed defines the level-driven movement speed curve.
type SnakeSpeed struct {
	BaseInterval      float64 `yaml:"base_interval"`       // Seconds per move at level 1
	ReductionPerLevel float64 `yaml:"reduction_per_level"` // Fractional interval cut per level above 1
	MinInterval       float64 `yaml:"min_interval"`        // Hard floor, never faster
}

// SnakeScoring defines the scoring formula inputs.
type SnakeScoring struct {
	LevelMultiplier float64 `yaml:"level_multiplier"` // Per-level score scaling
	FoodPerLevel    int     `yaml:"food_per_level"`   // Food eaten per level advance
}

// SnakeFood defines food variety odds and lifetimes.
type SnakeFood struct {
	NormalPoints int     `yaml:"normal_points"`
	BonusPoints  int     `yaml:"bonus_points"`
	GoldenPoints int     `yaml:"golden_points"`
	BonusChance  float64 `yaml:"bonus_chance"`  // Probability a spawn is bonus food
	GoldenChance float64 `yaml:"golden_chance"` // Probability a spawn is golden food
	BonusTTL     float64 `yaml:"bonus_ttl"`     // Seconds before bonus food decays to normal
	GoldenTTL    float64 `yaml:"golden_ttl"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset normalizes a user-supplied preset string.
// Empty and unknown values map to the empty preset (use config defaults).
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	default:
		return ""
	}
}
