package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/clonkbot/neon-orb-catcher-f2a73c/internal/game"
)

// tuningFile mirrors the YAML tuning schema. Pointer fields distinguish
// "absent" from zero so a partial file only overrides what it names.
type tuningFile struct {
	InitialLives     *int `yaml:"initial_lives"`
	InitialOrbs      *int `yaml:"initial_orbs"`
	InitialObstacles *int `yaml:"initial_obstacles"`

	LevelScoreStep   *int `yaml:"level_score_step"`
	LevelUpOrbs      *int `yaml:"level_up_orbs"`
	LevelUpObstacles *int `yaml:"level_up_obstacles"`

	CollectRadius *float64 `yaml:"collect_radius"`
	HitRadius     *float64 `yaml:"hit_radius"`

	ReplenishDelayMS *int `yaml:"replenish_delay_ms"`
}

// LoadTuning reads a YAML tuning file and applies it over the defaults.
// An empty path returns the defaults unchanged.
func LoadTuning(path string) (game.Tuning, error) {
	tuning := game.DefaultTuning()
	if path == "" {
		return tuning, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return tuning, fmt.Errorf("read tuning file: %w", err)
	}

	var file tuningFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return tuning, fmt.Errorf("parse tuning file: %w", err)
	}

	applyOverride(&tuning.InitialLives, file.InitialLives)
	applyOverride(&tuning.InitialOrbs, file.InitialOrbs)
	applyOverride(&tuning.InitialObstacles, file.InitialObstacles)
	applyOverride(&tuning.LevelScoreStep, file.LevelScoreStep)
	applyOverride(&tuning.LevelUpOrbs, file.LevelUpOrbs)
	applyOverride(&tuning.LevelUpObstacles, file.LevelUpObstacles)
	applyOverride(&tuning.CollectRadius, file.CollectRadius)
	applyOverride(&tuning.HitRadius, file.HitRadius)
	if file.ReplenishDelayMS != nil {
		tuning.ReplenishDelay = time.Duration(*file.ReplenishDelayMS) * time.Millisecond
	}

	if err := validate(tuning); err != nil {
		return game.DefaultTuning(), err
	}
	return tuning, nil
}

func applyOverride[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func validate(t game.Tuning) error {
	switch {
	case t.InitialLives < 1:
		return fmt.Errorf("initial_lives must be at least 1, got %d", t.InitialLives)
	case t.InitialOrbs < 1:
		return fmt.Errorf("initial_orbs must be at least 1, got %d", t.InitialOrbs)
	case t.InitialObstacles < 0:
		return fmt.Errorf("initial_obstacles must not be negative, got %d", t.InitialObstacles)
	case t.LevelScoreStep < 1:
		return fmt.Errorf("level_score_step must be positive, got %d", t.LevelScoreStep)
	case t.CollectRadius <= 0 || t.HitRadius <= 0:
		return fmt.Errorf("collision radii must be positive, got collect=%v hit=%v", t.CollectRadius, t.HitRadius)
	case t.ReplenishDelay < 0:
		return fmt.Errorf("replenish_delay_ms must not be negative, got %v", t.ReplenishDelay)
	}
	return nil
}
