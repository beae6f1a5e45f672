package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/oshokin/pace-planner/internal/config"
	"github.com/oshokin/pace-planner/internal/domain/pace"
	"github.com/oshokin/pace-planner/internal/logger"
	"github.com/oshokin/pace-planner/internal/render"
)

// Persistent flag names.
const (
	flagConfig   = "config"
	flagUnit     = "unit"
	flagDetailed = "detailed"
	flagFormat   = "format"
	flagLogLevel = "log-level"
)

// cliFlags receives the persistent flag values.
type cliFlags struct {
	configPath string
	unit       string
	detailed   bool
	format     string
	logLevel   string
}

// resolveSettings loads the configuration file, applies explicitly set flags
// on top and configures the global log level.
// A missing file is only an error when --config was given explicitly.
func resolveSettings(fs *pflag.FlagSet, f *cliFlags) (*config.Config, error) {
	settings, err := config.Load(f.configPath)

	switch {
	case err == nil:
	case errors.Is(err, config.ErrNotFound) && !fs.Changed(flagConfig):
		settings = config.Default()
	default:
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if fs.Changed(flagUnit) {
		settings.Unit = pace.Unit(f.unit)
	}

	if fs.Changed(flagDetailed) {
		settings.Detailed = f.detailed
	}

	if fs.Changed(flagFormat) {
		settings.Format = render.Format(f.format)
	}

	if fs.Changed(flagLogLevel) {
		settings.LogLevel = f.logLevel
	}

	if err := config.Validate(settings); err != nil {
		return nil, err
	}

	level, _ := logger.ParseLogLevel(settings.LogLevel)
	logger.SetLevel(level)

	return settings, nil
}

// renderOptions extracts display options from settings.
func renderOptions(settings *config.Config) render.Options {
	return render.Options{
		Format:   settings.Format,
		Detailed: settings.Detailed,
	}
}
