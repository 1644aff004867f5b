package crashcourse

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// MinCanvasHeight is the smallest accepted canvas height, two grid rows.
const MinCanvasHeight = 2 * BlockHeight

// Config holds the tunables of a game session.
type Config struct {
	Canvas Canvas

	// Gravity in pixels per second squared, pointing down.
	Gravity float64

	PairPolicy PairPolicy

	// Volume of object sounds, between 0 and 1.
	Volume float64

	// Directory to load sound files from. Sounds are synthesized if empty.
	SoundDir string

	LogLevel slog.Level
}

func DefaultConfig() Config {
	return Config{
		Canvas:     Canvas{Width: 640, Height: 480},
		Gravity:    600,
		PairPolicy: PairPolicyAll,
		Volume:     0.5,
		LogLevel:   slog.LevelInfo,
	}
}

// LoadConfig reads the configuration from CRASHCOURSE_* environment variables.
// Values that do not parse keep their defaults.
func LoadConfig() Config {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) Config {
	cfg := DefaultConfig()

	if value := getenv("CRASHCOURSE_WIDTH"); value != "" {
		if val, err := strconv.Atoi(value); err == nil && val >= BlockWidth {
			cfg.Canvas.Width = val
		}
	}

	if value := getenv("CRASHCOURSE_HEIGHT"); value != "" {
		// the level needs a floor row and a row above it
		if val, err := strconv.Atoi(value); err == nil && val >= MinCanvasHeight {
			cfg.Canvas.Height = val
		}
	}

	if value := getenv("CRASHCOURSE_GRAVITY"); value != "" {
		if val, err := strconv.ParseFloat(value, 64); err == nil {
			cfg.Gravity = val
		}
	}

	if value := getenv("CRASHCOURSE_PAIR_POLICY"); value != "" {
		switch strings.ToLower(value) {
		case "all":
			cfg.PairPolicy = PairPolicyAll
		case "first":
			cfg.PairPolicy = PairPolicyFirst
		}
	}

	// volume is given in percent
	if value := getenv("CRASHCOURSE_VOLUME"); value != "" {
		if val, err := strconv.Atoi(value); err == nil {
			cfg.Volume = max(0, min(1, float64(val)/100.0))
		}
	}

	if value := getenv("CRASHCOURSE_SOUND_DIR"); value != "" {
		cfg.SoundDir = value
	}

	if value := getenv("CRASHCOURSE_LOG_LEVEL"); value != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err == nil {
			cfg.LogLevel = level
		}
	}

	return cfg
}
