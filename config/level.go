package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// Generation constants shared by the generator and the level queries
const (
	// MinRoomSize is the smallest room side a leaf region must still fit
	MinRoomSize = 5

	// CorridorThickness is the cross size of a corridor, walls included
	CorridorThickness = 4

	// MinStraightOverlap is the overlap two rooms need for a straight corridor
	MinStraightOverlap = 3

	// CorridorMargin is how far corridors are grown along their direction after generation
	CorridorMargin = 1
)

// ErrInvalidConfiguration is returned when a LevelConfig can never produce a level
var ErrInvalidConfiguration = errors.New("invalid level configuration")

// LevelConfig holds the caller supplied level generation parameters
type LevelConfig struct {
	Columns        int     `json:"columns"`
	Rows           int     `json:"rows"`
	MaxDepth       int     `json:"max_depth"`
	SplitDeviation float64 `json:"split_deviation"`
	MaxAttempts    int     `json:"max_attempts"`
}

// DefaultLevelConfig returns the parameters the game loads its levels with
func DefaultLevelConfig() LevelConfig {
	return LevelConfig{
		Columns:        60,
		Rows:           50,
		MaxDepth:       3,
		SplitDeviation: 0.2,
		MaxAttempts:    500,
	}
}

// LoadLevelConfig loads a level configuration from a JSON file.
// Fields missing from the file keep their default values.
func LoadLevelConfig(filePath string) (LevelConfig, error) {
	cfg := DefaultLevelConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read level config %s: %w", filePath, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse level config %s: %w", filePath, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate rejects configurations that generation could never satisfy
func (c LevelConfig) Validate() error {
	if c.Columns <= 0 || c.Rows <= 0 {
		return fmt.Errorf("%w: grid must be positive, got %dx%d", ErrInvalidConfiguration, c.Columns, c.Rows)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidConfiguration, c.MaxDepth)
	}
	if c.SplitDeviation < 0 || c.SplitDeviation >= 1 {
		return fmt.Errorf("%w: split deviation must be in [0, 1), got %g", ErrInvalidConfiguration, c.SplitDeviation)
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("%w: max attempts must be positive, got %d", ErrInvalidConfiguration, c.MaxAttempts)
	}
	if !Splittable(c.Columns, c.Rows, c.MaxDepth) {
		return fmt.Errorf("%w: %dx%d grid cannot be split %d times into %dx%d regions",
			ErrInvalidConfiguration, c.Columns, c.Rows, c.MaxDepth, MinRoomSize, MinRoomSize)
	}
	return nil
}

// Splittable reports whether a width x height region can still be split
// splits more times while every resulting region keeps MinRoomSize on both axes.
// For p splits along the width and q = splits-p along the height some p must
// leave width/2^p >= MinRoomSize and height/2^q >= MinRoomSize.
func Splittable(width, height, splits int) bool {
	if splits < 0 {
		return false
	}
	for p := 0; p <= splits; p++ {
		q := splits - p
		if math.Ldexp(float64(width), -p) >= MinRoomSize &&
			math.Ldexp(float64(height), -q) >= MinRoomSize {
			return true
		}
	}
	return false
}
