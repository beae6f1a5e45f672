// Package config defines the planner settings and helpers to load, validate
// and save them in YAML format.
//
// The Config type holds the default distance unit, whether the detailed plan
// is shown, the output format and the log level. Command-line flags override
// whatever the file provides.
package config
