package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-lightsout/model"
)

// ConfigPathEnv names the environment variable that overrides the config location
const ConfigPathEnv = "CONFIG_PATH"

// DefaultConfigPath is read when neither a flag nor CONFIG_PATH is given
const DefaultConfigPath = "config.json"

// Config holds the configuration for the game
type Config struct {
	Rows              int     `json:"rows" yaml:"rows"`
	Cols              int     `json:"cols" yaml:"cols"`
	LightProbability  float64 `json:"light_probability" yaml:"light_probability"`
	Seed              int64   `json:"seed" yaml:"seed"` // 0 seeds from the clock
	RequireSolvable   bool    `json:"require_solvable" yaml:"require_solvable"`
	MaxRerollAttempts int     `json:"max_reroll_attempts" yaml:"max_reroll_attempts"`
	ShowHints         bool    `json:"show_hints" yaml:"show_hints"`
	SurveyBoards      int     `json:"survey_boards" yaml:"survey_boards"`
	Workers           int     `json:"workers" yaml:"workers"`
	CellSize          int     `json:"cell_size" yaml:"cell_size"` // pixels, window front end only
	LogLevel          string  `json:"log_level" yaml:"log_level"`
	LogFile           string  `json:"log_file" yaml:"log_file"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:              5,
		Cols:              5,
		LightProbability:  0.25,
		Seed:              0,
		RequireSolvable:   false,
		MaxRerollAttempts: 1000,
		ShowHints:         false,
		SurveyBoards:      1000,
		Workers:           runtime.NumCPU(),
		CellSize:          64,
		LogLevel:          "info",
		LogFile:           "",
	}
}

// LoadConfig loads configuration from a JSON or YAML file, picked by extension
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}
	return config, nil
}

// ResolveConfigPath picks the flag value, then CONFIG_PATH, then the default path.
// explicit is false only when the default path was chosen.
func ResolveConfigPath(flagValue string) (path string, explicit bool) {
	if flagValue != "" {
		return flagValue, true
	}
	if env := os.Getenv(ConfigPathEnv); env != "" {
		return env, true
	}
	return DefaultConfigPath, false
}

// LoadConfigOrDefault resolves the config path and loads it. Defaults are
// returned only when the implicit default file does not exist.
func LoadConfigOrDefault(flagValue string) (Config, string, error) {
	path, explicit := ResolveConfigPath(flagValue)
	config, err := LoadConfig(path)
	if err != nil && !explicit && errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), path, nil
	}
	return config, path, err
}

// Validate rejects settings the engine or front ends cannot work with
func (c Config) Validate() error {
	if err := model.ValidateParams(c.Rows, c.Cols, c.LightProbability); err != nil {
		return errors.Wrap(err, "[Validate] board parameters")
	}
	if c.MaxRerollAttempts <= 0 {
		return errors.Errorf("[Validate] max_reroll_attempts must be positive, got %d", c.MaxRerollAttempts)
	}
	if c.SurveyBoards < 0 {
		return errors.Errorf("[Validate] survey_boards must not be negative, got %d", c.SurveyBoards)
	}
	if c.Workers < 0 {
		return errors.Errorf("[Validate] workers must not be negative, got %d", c.Workers)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("[Validate] cell_size must be positive, got %d", c.CellSize)
	}
	return nil
}
