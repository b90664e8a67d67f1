package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"liftsim/src/types"
)

const (
	DefaultConfigPath = "config/elevators.yaml"
	DefaultEnvPath    = ".env"

	EnvConfig   = "LIFTSIM_CONFIG"
	EnvRoster   = "LIFTSIM_ROSTER"
	EnvLogLevel = "LIFTSIM_LOG_LEVEL"
	EnvLogFile  = "LIFTSIM_LOG_FILE"
)

type Config struct {
	NumberOfElevators int    `yaml:"numberOfElevators"`
	MinFloorValue     int    `yaml:"minFloorValue"`
	MaxFloorValue     int    `yaml:"maxFloorValue"`
	RosterFile        string `yaml:"rosterFile"`
	LogLevel          string `yaml:"logLevel"`
	LogFile           string `yaml:"logFile"`
}

// fileConfig mirrors Config with pointers for the keys a config file must set.
type fileConfig struct {
	NumberOfElevators *int   `yaml:"numberOfElevators"`
	MinFloorValue     *int   `yaml:"minFloorValue"`
	MaxFloorValue     *int   `yaml:"maxFloorValue"`
	RosterFile        string `yaml:"rosterFile"`
	LogLevel          string `yaml:"logLevel"`
	LogFile           string `yaml:"logFile"`
}

// Load reads and validates the YAML config at path. numberOfElevators, minFloorValue and
// maxFloorValue are required.
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", types.ErrInvalidConfig, err)
	}
	defer file.Close()

	var raw fileConfig
	if err := yaml.NewDecoder(file).Decode(&raw); err != nil {
		return Config{}, fmt.Errorf("%w: decoding %s: %w", types.ErrInvalidConfig, path, err)
	}
	required := []struct {
		key   string
		value *int
	}{
		{"numberOfElevators", raw.NumberOfElevators},
		{"minFloorValue", raw.MinFloorValue},
		{"maxFloorValue", raw.MaxFloorValue},
	}
	for _, r := range required {
		if r.value == nil {
			return Config{}, fmt.Errorf("%w: %s: missing required key %s", types.ErrInvalidConfig, path, r.key)
		}
	}

	c := Config{
		NumberOfElevators: *raw.NumberOfElevators,
		MinFloorValue:     *raw.MinFloorValue,
		MaxFloorValue:     *raw.MaxFloorValue,
		RosterFile:        raw.RosterFile,
		LogLevel:          raw.LogLevel,
		LogFile:           raw.LogFile,
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// ReadEnv returns the variables set in a dotenv file, overlaid with the process environment.
// A missing file is not an error.
func ReadEnv(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		env, err = map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", types.ErrInvalidConfig, path, err)
	}
	for _, key := range []string{EnvConfig, EnvRoster, EnvLogLevel, EnvLogFile} {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	return env, nil
}

// ApplyEnv overrides file settings with LIFTSIM_* variables.
func (c *Config) ApplyEnv(env map[string]string) {
	if v, ok := env[EnvRoster]; ok {
		c.RosterFile = v
	}
	if v, ok := env[EnvLogLevel]; ok {
		c.LogLevel = v
	}
	if v, ok := env[EnvLogFile]; ok {
		c.LogFile = v
	}
}

// Validate rejects a negative elevator count and an inverted floor range. A zero count is
// allowed with a warning. A single-floor building is warned about by FloorRange.
func (c Config) Validate() error {
	switch {
	case c.NumberOfElevators < 0:
		return fmt.Errorf("%w: numberOfElevators cannot be lower than 0 (got %d)", types.ErrInvalidConfig, c.NumberOfElevators)
	case c.NumberOfElevators == 0:
		slog.Warn("Number of elevators is 0")
	}
	if c.MinFloorValue > c.MaxFloorValue {
		return fmt.Errorf("%w: minFloorValue %d is bigger than maxFloorValue %d",
			types.ErrInvalidConfig, c.MinFloorValue, c.MaxFloorValue)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (c Config) FloorRange() (types.FloorRange, error) {
	return types.NewFloorRange(c.MinFloorValue, c.MaxFloorValue)
}

// SlogLevel maps logLevel to a slog level. Empty means info.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: unknown logLevel %q", types.ErrInvalidConfig, c.LogLevel)
}
