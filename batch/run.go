package batch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of one operation.
// Err is set when the operation's precondition was violated; Value is nil then.
type Result struct {
	Index int
	Op    string
	Value any
	Err   error
}

// Run evaluates all operations concurrently and returns results in job order.
// A failing operation does not stop the others; only a cancelled context or
// an invalid job makes Run return an error.
func (j *Job) Run(ctx context.Context, logger *slog.Logger) ([]Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}

	workers := j.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	start := time.Now()
	results := make([]Result, len(j.Ops))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, op := range j.Ops {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = evaluate(i, op)
			if results[i].Err != nil {
				logger.Debug("operation failed", "index", i, "op", op.Op, "err", results[i].Err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.Info("job finished", "ops", len(j.Ops), "workers", workers, "elapsed", time.Since(start))
	return results, nil
}

func evaluate(i int, op Op) Result {
	r := Result{Index: i, Op: op.Op}
	v, err := registry[op.Op].eval(op)
	if err != nil {
		r.Err = fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		return r
	}
	r.Value = v
	return r
}
