// Package config resolves the meeting configuration from CLI flags, an
// optional YAML defaults file and built-in defaults, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when --config is not
// given. Its absence is not an error.
const DefaultFile = ".nextup.yaml"

// ErrInvalidDuration indicates a non-positive meeting duration.
var ErrInvalidDuration = errors.New("invalid --duration")

// Config is the fully resolved, immutable meeting configuration.
type Config struct {
	Title     string
	NamesFile string
	Duration  time.Duration
	HideTimer bool
	Debug     bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Title:     "Team daily standup",
		NamesFile: "team.txt",
		Duration:  15 * time.Minute,
	}
}

// FileConfig mirrors the optional YAML defaults file. Pointer fields
// distinguish "absent" from zero values.
type FileConfig struct {
	Title           *string `yaml:"title"`
	Names           *string `yaml:"names"`
	DurationMinutes *int    `yaml:"duration_minutes"`
	HideTimer       *bool   `yaml:"hide_timer"`
}

// LoadFile parses the YAML defaults at path. When explicit is false the
// path is the conventional default and a missing file yields an empty
// FileConfig; an explicitly requested file must exist.
func LoadFile(path string, explicit bool) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return fc, nil
}

// Flags carries the CLI flag values plus whether each was set on the
// command line, so file values only fill the gaps.
type Flags struct {
	Title           string
	TitleSet        bool
	Names           string
	NamesSet        bool
	DurationMinutes int
	DurationSet     bool
	HideTimer       bool
	HideTimerSet    bool
	Debug           bool
}

// Resolve merges flags over file values over defaults and validates the
// result.
func Resolve(flags Flags, file FileConfig) (Config, error) {
	cfg := Default()
	cfg.Debug = flags.Debug

	if file.Title != nil {
		cfg.Title = *file.Title
	}
	if file.Names != nil {
		cfg.NamesFile = *file.Names
	}
	if file.DurationMinutes != nil {
		cfg.Duration = time.Duration(*file.DurationMinutes) * time.Minute
	}
	if file.HideTimer != nil {
		cfg.HideTimer = *file.HideTimer
	}

	if flags.TitleSet {
		cfg.Title = flags.Title
	}
	if flags.NamesSet {
		cfg.NamesFile = flags.Names
	}
	if flags.DurationSet {
		cfg.Duration = time.Duration(flags.DurationMinutes) * time.Minute
	}
	if flags.HideTimerSet {
		cfg.HideTimer = flags.HideTimer
	}

	if cfg.Duration <= 0 {
		return Config{}, fmt.Errorf("%w: %s is not a positive number of minutes", ErrInvalidDuration, cfg.Duration)
	}
	return cfg, nil
}
