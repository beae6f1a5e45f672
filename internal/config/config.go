package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/pace-planner/internal/domain/pace"
	"github.com/oshokin/pace-planner/internal/logger"
	"github.com/oshokin/pace-planner/internal/render"
)

// Config holds the planner settings.
type Config struct {
	// Unit is the distance unit paces are expressed in.
	Unit pace.Unit `yaml:"unit"`
	// Detailed shows the LT, GA and LR ranges in addition to marathon pace.
	Detailed bool `yaml:"detailed"`
	// Format is the output format: text, yaml or json.
	Format render.Format `yaml:"format"`
	// LogLevel is the minimum level of diagnostic output.
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is the default filename for planner settings.
	DefaultConfigFilename = "pace-planner.yaml"

	// DefaultLogLevel is used when the file does not set one.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// ErrNotFound is returned by Load when the settings file does not exist.
	ErrNotFound = errors.New("settings file not found")
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownLogLevel is returned for unsupported log levels.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Unit:     pace.Mile,
		Format:   render.Text,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads settings from the provided path and validates them.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the settings and normalizes aliases and empty values in place.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.Unit == "" {
		settings.Unit = pace.Mile
	}

	unit, err := pace.ParseUnit(string(settings.Unit))
	if err != nil {
		return fmt.Errorf("invalid unit: %w", err)
	}

	settings.Unit = unit

	format, err := render.ParseFormat(string(settings.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	settings.Format = format

	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, settings.LogLevel)
	}

	return nil
}
