package planner

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/oshokin/pace-planner/internal/domain/pace"
	"github.com/oshokin/pace-planner/internal/duration"
	"github.com/oshokin/pace-planner/internal/logger"
	"github.com/oshokin/pace-planner/internal/metrics"
)

// DefaultGoal is the initial goal text, equivalent to nothing entered yet.
const DefaultGoal = "00:00:00"

// Publisher receives every result the planner decides to publish.
type Publisher interface {
	Set(result *pace.Result)
}

// Planner recomputes paces on input changes and publishes them.
type Planner struct {
	// publisher receives published results.
	publisher Publisher
	// sessionID tags log lines of this planner.
	sessionID uuid.UUID

	mu sync.Mutex
	// goal is the raw goal text as last entered.
	goal string
	// unit is the current distance unit.
	unit pace.Unit

	// memoTotal and memoUnit are the inputs of memo.
	memoTotal int64
	memoUnit  pace.Unit
	// memo is the last computed result, nil for degenerate input.
	memo *pace.Result

	// published is false until the first publication.
	published bool
	// last is the most recently published result.
	last *pace.Result
}

// New creates a planner for unit that publishes to publisher.
// Nothing is published until Start, SetGoal or SetUnit is called.
func New(publisher Publisher, unit pace.Unit) *Planner {
	if !unit.Valid() {
		unit = pace.Mile
	}

	return &Planner{
		publisher: publisher,
		sessionID: uuid.New(),
		goal:      DefaultGoal,
		unit:      unit,
	}
}

// SessionID identifies this planner in logs.
func (p *Planner) SessionID() string {
	return p.sessionID.String()
}

// Start publishes the result for the initial goal.
func (p *Planner) Start(ctx context.Context) *pace.Result {
	ctx = p.scope(ctx)

	p.mu.Lock()
	logger.DebugKV(ctx, "Planner started", "goal", p.goal, "unit", p.unit)
	result, changed := p.refreshLocked(ctx)
	p.mu.Unlock()

	return p.publish(result, changed)
}

// SetGoal replaces the goal text and publishes the resulting paces.
func (p *Planner) SetGoal(ctx context.Context, text string) *pace.Result {
	ctx = p.scope(ctx)

	p.mu.Lock()
	p.goal = text
	result, changed := p.refreshLocked(ctx)
	p.mu.Unlock()

	return p.publish(result, changed)
}

// SetUnit switches the distance unit and publishes the resulting paces.
// Invalid units are ignored and the current result is returned.
func (p *Planner) SetUnit(ctx context.Context, unit pace.Unit) *pace.Result {
	ctx = p.scope(ctx)

	p.mu.Lock()

	if !unit.Valid() {
		last := p.last
		p.mu.Unlock()

		logger.WarnKV(ctx, "Unit ignored", "unit", unit)

		return last
	}

	p.unit = unit
	result, changed := p.refreshLocked(ctx)
	p.mu.Unlock()

	return p.publish(result, changed)
}

// Goal returns the current goal text.
func (p *Planner) Goal() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.goal
}

// Unit returns the current distance unit.
func (p *Planner) Unit() pace.Unit {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.unit
}

// scope attaches the planner's name and session to the context logger.
func (p *Planner) scope(ctx context.Context) context.Context {
	return logger.WithKV(logger.WithName(ctx, "planner"), "session_id", p.SessionID())
}

// publish hands result to the publisher outside the planner lock, so
// subscribers may call back into the planner.
func (p *Planner) publish(result *pace.Result, changed bool) *pace.Result {
	if !changed {
		return result
	}

	if result == nil {
		metrics.RecordCleared()
	}

	p.publisher.Set(result)

	return result
}

// refreshLocked recomputes the result and reports whether it must be published.
func (p *Planner) refreshLocked(ctx context.Context) (*pace.Result, bool) {
	total, err := duration.Parse(p.goal)
	if err != nil {
		metrics.RecordParseFailure(duration.Reason(err))
		logger.DebugKV(ctx, "Goal rejected", "goal", p.goal, "reason", duration.Reason(err), "error", err)

		total = 0
	}

	result := p.computeLocked(ctx, total)

	// Publish only when the reference changes, except for the first time.
	if p.published && result == p.last {
		return result, false
	}

	p.published = true
	p.last = result

	return result, true
}

// computeLocked returns the memoized result for (total, unit), building a
// new one only when the inputs differ from the previous computation.
func (p *Planner) computeLocked(ctx context.Context, total int64) *pace.Result {
	if total <= 0 {
		p.memo, p.memoTotal, p.memoUnit = nil, 0, ""

		return nil
	}

	if p.memo != nil && p.memoTotal == total && p.memoUnit == p.unit {
		return p.memo
	}

	result := pace.Compute(total, p.unit)

	p.memo, p.memoTotal, p.memoUnit = result, total, p.unit

	metrics.RecordComputation(string(p.unit))
	logger.DebugKV(ctx, "Paces computed", "goal_seconds", total, "unit", p.unit, "mp", result.MP)

	return result
}
