// Package logger wraps zap with the helpers the planner needs:
//   - a global sugared logger writing console lines to stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing for the --log-level flag and the config file.
//
// Services take a context and pull the logger out of it, so a command can
// scope every line it produces (session id, command name) in one place.
package logger
