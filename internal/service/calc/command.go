package calc

import (
	"context"
	"errors"
	"io"

	"github.com/oshokin/pace-planner/internal/domain/pace"
	"github.com/oshokin/pace-planner/internal/logger"
	"github.com/oshokin/pace-planner/internal/metrics"
	"github.com/oshokin/pace-planner/internal/render"
	"github.com/oshokin/pace-planner/internal/service/planner"
	"github.com/oshokin/pace-planner/internal/store"
)

// Options controls a one-shot calculation.
type Options struct {
	// Goal is the goal marathon time, "HH:MM:SS" or "MM:SS".
	Goal string
	// Unit is the distance unit of the printed paces.
	Unit pace.Unit
	// Render controls the output format and detail level.
	Render render.Options
}

// errNoOptions is returned when Run is called without options.
var errNoOptions = errors.New("options are not set")

// Run prints the paces for opts.Goal to w and returns the computed result.
// An unparsable or zero goal is not an error: the empty notice is printed
// and the result is nil.
func Run(ctx context.Context, w io.Writer, opts *Options) (*pace.Result, error) {
	if opts == nil {
		return nil, errNoOptions
	}

	ctx = logger.WithName(ctx, "calc")

	paces := store.New[*pace.Result](store.WithNotifyHook(metrics.RecordNotification))

	var renderErr error

	renderer := render.New(paces, w, opts.Render)
	unsubscribe := paces.Subscribe(func() {
		renderErr = renderer.Render()
	})

	defer unsubscribe()

	result := planner.New(paces, opts.Unit).SetGoal(ctx, opts.Goal)
	if renderErr != nil {
		return nil, renderErr
	}

	if result == nil {
		logger.DebugKV(ctx, "No paces for goal", "goal", opts.Goal)
	}

	return result, nil
}
