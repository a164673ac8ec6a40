// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables recognised by LoadSettings.
const (
	EnvHighScorePath = "ISOZ_HIGHSCORE_PATH"
	EnvSeed          = "ISOZ_SEED"
	EnvMute          = "ISOZ_MUTE"
	EnvStartInGame   = "ISOZ_START_IN_GAME"
	EnvPprofAddr     = "ISOZ_PPROF_ADDR"
)

// Settings are the per-install runtime knobs. Gameplay tuning lives in Rules.
type Settings struct {
	HighScorePath string
	Seed          int64 // spawn PRNG seed, 0 picks one from the clock
	Mute          bool
	StartInGame   bool   // skip the menu and begin a round immediately
	PprofAddr     string // empty disables the profiling listener
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{HighScorePath: HighScoreDefaultPath}
}

// LoadSettings reads envFile (if it exists) into the process environment and
// then builds Settings from it. Variables already set in the environment win
// over the file. A missing file is not an error; an unparsable value keeps the
// default and is reported in the returned error.
func LoadSettings(envFile string) (Settings, error) {
	s := DefaultSettings()

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return s, fmt.Errorf("failed to load env file %s: %w", envFile, err)
			}
			log.Printf("Loaded settings from %s", envFile)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return s, fmt.Errorf("failed to stat env file %s: %w", envFile, err)
		}
	}

	var errs []error
	if v := os.Getenv(EnvHighScorePath); v != "" {
		s.HighScorePath = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		} else {
			s.Seed = seed
		}
	}
	if v := os.Getenv(EnvMute); v != "" {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvMute, err))
		} else {
			s.Mute = mute
		}
	}
	if v := os.Getenv(EnvStartInGame); v != "" {
		start, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvStartInGame, err))
		} else {
			s.StartInGame = start
		}
	}
	s.PprofAddr = os.Getenv(EnvPprofAddr)

	return s, errors.Join(errs...)
}
