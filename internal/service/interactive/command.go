package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/chzyer/readline"

	"github.com/oshokin/pace-planner/internal/domain/pace"
	"github.com/oshokin/pace-planner/internal/logger"
	"github.com/oshokin/pace-planner/internal/render"
)

// Options controls the interactive session.
type Options struct {
	// Unit is the initial distance unit.
	Unit pace.Unit
	// Render holds the initial output format and detail level.
	Render render.Options
	// HistoryFile keeps entered lines between runs when set.
	HistoryFile string
}

// Prompt is shown before every input line.
const Prompt = "goal> "

// errNoOptions is returned when Run is called without options.
var errNoOptions = errors.New("options are not set")

// Run reads lines until quit, EOF or context cancellation.
func Run(ctx context.Context, opts *Options) error {
	if opts == nil {
		return errNoOptions
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          Prompt,
		HistoryFile:     opts.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("create readline: %w", err)
	}

	var closeOnce sync.Once

	closeReadline := func() {
		closeOnce.Do(func() { _ = rl.Close() })
	}

	defer closeReadline()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Log through readline so lines do not break the prompt.
	ctx = logger.ToContext(ctx, logger.New(logger.AtomicLevel(), rl.Stderr()))
	ctx = logger.WithName(ctx, "interactive")

	session := NewSession(rl.Stdout(), opts.Unit, opts.Render)
	session.printHelp()

	stop := session.Start(ctx)
	defer stop()

	// Unblock Readline when the context is canceled.
	go func() {
		<-ctx.Done()
		closeReadline()
	}()

	return loop(ctx, rl, session)
}

// lineReader is the part of readline the loop depends on.
type lineReader interface {
	Readline() (string, error)
}

func loop(ctx context.Context, rl lineReader, session *Session) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			// Ctrl-C clears the line, anything else (EOF, closed) ends the session.
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}

			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}

			return fmt.Errorf("read line: %w", err)
		}

		if session.Handle(ctx, line) {
			return nil
		}
	}
}
