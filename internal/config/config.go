package config

import (
	"flag"
	"fmt"
)

// Default values for configuration
const (
	DefaultPoints = 11
)

// Config holds the application configuration
type Config struct {
	PointsToWin int
	Seed        int64 // 0 means derive from the clock
	Mute        bool
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("solopong", flag.ContinueOnError)

	points := fs.Int("points", DefaultPoints, "points to win (>=1)")
	seed := fs.Int64("seed", 0, "random seed for serves and AI aim (0 = time-based)")
	mute := fs.Bool("mute", false, "disable sound")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *points < 1 {
		return nil, fmt.Errorf("points must be at least 1, got %d", *points)
	}
	if *seed < 0 {
		return nil, fmt.Errorf("seed must be non-negative, got %d", *seed)
	}

	cfg := &Config{
		PointsToWin: *points,
		Seed:        *seed,
		Mute:        *mute,
	}

	return cfg, nil
}
