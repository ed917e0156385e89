package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultPongConfig returns the default Pong configuration.
// Kept in sync with defaults/pong.yaml as the fallback of last resort.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Court: PongCourt{
			Width:  800,
			Height: 600,
		},
		Paddle: PongPaddle{
			Width:        12,
			Height:       80,
			Offset:       24,
			Speed:        360,
			Acceleration: 2400,
		},
		Ball: PongBall{
			Radius:     8,
			ServeSpeed: 420,
			MinSpeed:   300,
			MaxSpeed:   900,
		},
		Physics: PongPhysics{
			MaxBounceDeg:        60,
			SpinFactor:          0.25,
			SpeedIncreasePerHit: 0.05,
			MaxSpeedMultiplier:  2.0,
			WallDamping:         0.95,
		},
		Gameplay: PongGameplay{
			WinScore:   11,
			ServeDelay: 1.0,
		},
		AI: PongAITiers{
			Easy: AITier{
				ReactionTime:       0.35,
				PredictionAccuracy: 0.55,
				SpeedMultiplier:    0.7,
				ErrorMargin:        120,
				MakeMistakes:       true,
				MistakeChance:      0.25,
			},
			Normal: AITier{
				ReactionTime:       0.2,
				PredictionAccuracy: 0.75,
				SpeedMultiplier:    0.85,
				ErrorMargin:        80,
				MakeMistakes:       true,
				MistakeChance:      0.12,
			},
			Hard: AITier{
				ReactionTime:       0.1,
				PredictionAccuracy: 0.92,
				SpeedMultiplier:    1.0,
				ErrorMargin:        40,
				MakeMistakes:       false,
				MistakeChance:      0.0,
			},
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
// Kept in sync with defaults/snake.yaml as the fallback of last resort.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Size:          20,
			WallsWrap:     false,
			InitialLength: 3,
		},
		Speed: SnakeSpeed{
			BaseInterval:      0.15,
			ReductionPerLevel: 0.08,
			MinInterval:       0.06,
		},
		Scoring: SnakeScoring{
			LevelMultiplier: 0.5,
			FoodPerLevel:    5,
		},
		Food: SnakeFood{
			NormalPoints: 10,
			BonusPoints:  25,
			GoldenPoints: 50,
			BonusChance:  0.15,
			GoldenChance: 0.05,
			BonusTTL:     6.0,
			GoldenTTL:    4.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pong":
		return defaultPongYAML
	case "snake":
		return defaultSnakeYAML
	default:
		return nil
	}
}
