package render

import (
	"context"
	"io"
	"sync"

	"github.com/oshokin/pace-planner/internal/domain/pace"
	"github.com/oshokin/pace-planner/internal/logger"
	"github.com/oshokin/pace-planner/internal/store"
)

// Renderer writes the store's result to an output whenever it changes.
type Renderer struct {
	// w receives rendered output.
	w io.Writer
	// source is the store being observed.
	source store.Readable[*pace.Result]

	mu sync.Mutex
	// opts are the current display options.
	opts Options
	// last is the result most recently rendered.
	last *pace.Result
	// rendered is false until the first render.
	rendered bool
}

// New creates a renderer for source writing to w.
func New(source store.Readable[*pace.Result], w io.Writer, opts Options) *Renderer {
	return &Renderer{
		w:      w,
		source: source,
		opts:   opts,
	}
}

// Attach subscribes the renderer to its store and returns the detach function.
// Notifications that carry the same result reference as the last render are skipped.
func (r *Renderer) Attach(ctx context.Context) (detach func()) {
	return r.source.Subscribe(func() {
		if err := r.renderIfChanged(); err != nil {
			logger.ErrorKV(ctx, "Render failed", "error", err)
		}
	})
}

// Render writes the current result unconditionally.
func (r *Renderer) Render() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.renderLocked(r.source.Get())
}

// Options returns the current display options.
func (r *Renderer) Options() Options {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.opts
}

// SetOptions replaces the display options; the next render uses them.
func (r *Renderer) SetOptions(opts Options) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.opts = opts
}

func (r *Renderer) renderIfChanged() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.source.Get()
	if r.rendered && current == r.last {
		return nil
	}

	return r.renderLocked(current)
}

func (r *Renderer) renderLocked(current *pace.Result) error {
	r.last = current
	r.rendered = true

	return Write(r.w, current, r.opts)
}
