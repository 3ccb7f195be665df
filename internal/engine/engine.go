package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/liyu-tw/coursepick/pkg/model"
)

// State tracks the lifecycle of the most recent evaluation.
type State string

const (
	// StateIdle means no catalog has been submitted yet.
	StateIdle State = "idle"
	// StateEvaluating means pre-check, enumeration and ranking are in progress.
	StateEvaluating State = "evaluating"
	// StateDone means ranked candidate sets are available.
	StateDone State = "done"
	// StateFailed means the pre-check found the catalog infeasible. There is no
	// retry state: a failure requires a new invocation with a corrected catalog.
	StateFailed State = "failed"
)

// Params drives one evaluation run. MaxCandidates is a required hard cap on the
// number of generated candidates: without it, a catalog with many alternative
// offerings per course blows up combinatorially.
type Params struct {
	Policy        Policy `json:"policy"`
	MaxCandidates int    `json:"maxCandidates"`
}

// Validate rejects malformed parameters before any enumeration work.
func (p Params) Validate() error {
	if p.MaxCandidates < 1 {
		return &InvalidParamsError{Field: "maxCandidates", Reason: "must be at least 1"}
	}
	if !p.Policy.Valid() {
		return &InvalidParamsError{Field: "policy", Reason: "must be \"conflict\" or \"priority\""}
	}
	return nil
}

// Result is the ranked outcome of one evaluation. Clean holds the candidates
// free of slot collisions, Conflicting the rest; both are ordered under the
// requested policy. Truncated warns that the cap stopped enumeration before the
// full product was explored: a partial result, not an error.
type Result struct {
	Clean             []model.ScheduleCandidate `json:"clean"`
	Conflicting       []model.ScheduleCandidate `json:"conflicting"`
	TotalCombinations uint64                    `json:"totalCombinations"`
	Generated         int                       `json:"generated"`
	Truncated         bool                      `json:"truncated"`
}

// Engine enumerates every feasible combination of one offering per distinct
// course name and ranks the candidates by conflict count and preference weight.
// Evaluation is a pure, synchronous computation over the supplied catalog
// snapshot: the same catalog, policy and cap always yield the same ordered
// result.
type Engine interface {
	Evaluate(ctx context.Context, offerings []model.Offering, params Params) (*Result, error)
	State() State
}

// Option configures an Engine.
type Option func(*scheduleEngine)

// WithLogger attaches a structured logger; a nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(e *scheduleEngine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithWorkers sets how many goroutines score candidates in parallel. Values
// below 1 keep the default (GOMAXPROCS).
func WithWorkers(workers int) Option {
	return func(e *scheduleEngine) {
		if workers >= 1 {
			e.workers = workers
		}
	}
}

// New builds an Engine.
func New(options ...Option) Engine {
	return newScheduleEngine(options...)
}
