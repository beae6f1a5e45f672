package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/oshokin/pace-planner/internal/domain/pace"
	"github.com/oshokin/pace-planner/internal/logger"
	"github.com/oshokin/pace-planner/internal/metrics"
	"github.com/oshokin/pace-planner/internal/render"
	"github.com/oshokin/pace-planner/internal/service/planner"
	"github.com/oshokin/pace-planner/internal/store"
)

// Session binds a planner, its store and a renderer to one output.
type Session struct {
	out      io.Writer
	paces    *store.Store[*pace.Result]
	planner  *planner.Planner
	renderer *render.Renderer
	gatherer prometheus.Gatherer
}

// NewSession creates a session writing to out.
func NewSession(out io.Writer, unit pace.Unit, opts render.Options) *Session {
	paces := store.New[*pace.Result](store.WithNotifyHook(metrics.RecordNotification))

	return &Session{
		out:      out,
		paces:    paces,
		planner:  planner.New(paces, unit),
		renderer: render.New(paces, out, opts),
		gatherer: prometheus.DefaultGatherer,
	}
}

// Start attaches the renderer and publishes the initial goal.
// The returned function detaches the renderer.
func (s *Session) Start(ctx context.Context) (stop func()) {
	detach := s.renderer.Attach(ctx)
	s.planner.Start(ctx)

	logger.InfoKV(ctx, "Session started", "session_id", s.planner.SessionID())

	return detach
}

// Planner returns the session planner.
func (s *Session) Planner() *planner.Planner {
	return s.planner
}

// Handle executes one input line. It returns true when the session should end.
func (s *Session) Handle(ctx context.Context, line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	// Anything starting with a digit is a goal time.
	if input[0] >= '0' && input[0] <= '9' {
		s.planner.SetGoal(ctx, input)

		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "goal", "g":
		s.planner.SetGoal(ctx, strings.Join(args, " "))
	case "unit", "u":
		s.cmdUnit(ctx, args)
	case "detailed", "d":
		s.cmdDetailed(args)
	case "format", "f":
		s.cmdFormat(args)
	case "show", "s":
		s.render()
	case "stats":
		if err := metrics.WriteText(s.out, s.gatherer); err != nil {
			s.printf("Stats unavailable: %v\n", err)
		}
	case "quit", "exit", "q":
		return true
	default:
		s.printf("Unknown command: %s (type 'help' for commands)\n", cmd)
	}

	return false
}

func (s *Session) cmdUnit(ctx context.Context, args []string) {
	if len(args) != 1 {
		s.printf("Usage: unit <mi|km>, current: %s\n", s.planner.Unit().Short())

		return
	}

	unit, err := pace.ParseUnit(args[0])
	if err != nil {
		s.printf("%v\n", err)

		return
	}

	s.planner.SetUnit(ctx, unit)
}

func (s *Session) cmdDetailed(args []string) {
	opts := s.renderer.Options()

	switch {
	case len(args) == 0:
		opts.Detailed = !opts.Detailed
	case strings.EqualFold(args[0], "on"):
		opts.Detailed = true
	case strings.EqualFold(args[0], "off"):
		opts.Detailed = false
	default:
		s.printf("Usage: detailed [on|off]\n")

		return
	}

	s.renderer.SetOptions(opts)
	s.render()
}

func (s *Session) cmdFormat(args []string) {
	if len(args) != 1 {
		s.printf("Usage: format <text|yaml|json>, current: %s\n", s.renderer.Options().Format)

		return
	}

	format, err := render.ParseFormat(args[0])
	if err != nil {
		s.printf("%v\n", err)

		return
	}

	opts := s.renderer.Options()
	opts.Format = format
	s.renderer.SetOptions(opts)
	s.render()
}

func (s *Session) render() {
	if err := s.renderer.Render(); err != nil {
		s.printf("Render failed: %v\n", err)
	}
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Session) printHelp() {
	_, _ = fmt.Fprint(s.out, `
Pace Planner Commands:
  03:00:00             - Set the goal marathon time (HH:MM:SS or MM:SS)
  goal <time>          - Same as above
  unit <mi|km>         - Switch distance unit
  detailed [on|off]    - Show or hide LT, GA and LR ranges
  format <text|yaml|json>
                       - Change the output format
  show                 - Print the current paces again
  stats                - Print planner metrics
  help                 - Show this help
  quit                 - Exit
`)
}
