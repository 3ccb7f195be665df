package engine

import (
	"context"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/liyu-tw/coursepick/pkg/model"
)

type scheduleEngine struct {
	logger  *zap.Logger
	workers int

	mu    sync.Mutex
	state State
}

func newScheduleEngine(options ...Option) *scheduleEngine {
	e := &scheduleEngine{
		logger:  zap.NewNop(),
		workers: runtime.GOMAXPROCS(0),
		state:   StateIdle,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *scheduleEngine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *scheduleEngine) setState(state State) {
	e.mu.Lock()
	e.state = state
	e.mu.Unlock()
}

func (e *scheduleEngine) Evaluate(ctx context.Context, offerings []model.Offering, params Params) (*Result, error) {
	e.setState(StateEvaluating)

	if err := params.Validate(); err != nil {
		e.setState(StateFailed)
		return nil, err
	}

	// Feasibility is settled before the expensive enumeration phase (fail fast).
	groups, err := buildGroups(offerings)
	if err != nil {
		e.setState(StateFailed)
		e.logger.Warn("catalog infeasible", zap.Error(err))
		return nil, err
	}

	// An empty catalog (or one with every offering excluded) is a zero-candidate
	// success, not an error.
	if len(groups) == 0 {
		e.setState(StateDone)
		e.logger.Info("empty catalog, nothing to enumerate")
		return &Result{Clean: []model.ScheduleCandidate{}, Conflicting: []model.ScheduleCandidate{}}, nil
	}

	// The full product size is known up front, so truncation is decided before
	// enumeration rather than discovered after a partial walk.
	total := productSize(groups)
	truncated := total > uint64(params.MaxCandidates)
	e.logger.Info("enumerating combinations",
		zap.Int("groups", len(groups)),
		zap.Uint64("totalCombinations", total),
		zap.Int("maxCandidates", params.MaxCandidates),
		zap.Bool("willTruncate", truncated),
	)

	tuples, err := enumerate(ctx, groups, params.MaxCandidates)
	if err != nil {
		e.setState(StateFailed)
		return nil, err
	}

	candidates, err := e.scoreAll(ctx, tuples)
	if err != nil {
		e.setState(StateFailed)
		return nil, err
	}

	// Ranking needs the whole (possibly truncated) set, so the parallel scorers
	// have joined by now.
	clean, conflicting := rank(candidates, params.Policy)

	e.setState(StateDone)
	e.logger.Info("evaluation complete",
		zap.Int("generated", len(candidates)),
		zap.Int("clean", len(clean)),
		zap.Int("conflicting", len(conflicting)),
		zap.Bool("truncated", truncated),
	)
	return &Result{
		Clean:             clean,
		Conflicting:       conflicting,
		TotalCombinations: total,
		Generated:         len(candidates),
		Truncated:         truncated,
	}, nil
}

// scoreAll computes conflicts and metrics for every tuple across the worker
// pool. Each worker writes to a distinct index, so the collected slice keeps
// enumeration order and later stable sorts stay deterministic.
func (e *scheduleEngine) scoreAll(ctx context.Context, tuples [][]model.Offering) ([]model.ScheduleCandidate, error) {
	candidates := make([]model.ScheduleCandidate, len(tuples))

	workers := e.workers
	if workers > len(tuples) {
		workers = len(tuples)
	}
	if workers <= 1 {
		for i, tuple := range tuples {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			candidates[i] = scoreCandidate(tuple)
		}
		return candidates, nil
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				candidates[i] = scoreCandidate(tuples[i])
			}
		}()
	}

feed:
	for i := range tuples {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return candidates, nil
}
