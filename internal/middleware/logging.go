// Package middleware wraps provider operations with logging and metrics.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mmynk/splitbeam/internal/metrics"
)

// Outcome labels recorded for an operation.
const (
	OutcomeOK       = "ok"
	OutcomeCanceled = "canceled"
	OutcomeError    = "error"
)

// Coder is implemented by expected, caller-caused errors (not found,
// invalid argument). Such errors are logged at WARN and their code is used as
// the outcome label.
type Coder interface {
	Code() string
}

// Observe runs fn as the operation group.op. It rejects an already-cancelled
// ctx without calling fn, then logs the call and records its outcome and
// duration.
func Observe[T any](ctx context.Context, group, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	start := time.Now()
	procedure := group + "." + op

	var (
		resp T
		err  = ctx.Err()
	)
	if err == nil {
		resp, err = fn(ctx)
	}

	elapsed := time.Since(start)
	duration := elapsed.Milliseconds()
	outcome := OutcomeOK

	if err != nil {
		var coded Coder
		switch {
		case errors.As(err, &coded):
			outcome = coded.Code()
			slog.Warn("op error",
				"procedure", procedure,
				"code", outcome,
				"error", err,
				"duration_ms", duration,
			)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			outcome = OutcomeCanceled
			slog.Warn("op canceled",
				"procedure", procedure,
				"error", err,
				"duration_ms", duration,
			)
		default:
			outcome = OutcomeError
			slog.Error("op error",
				"procedure", procedure,
				"error", err,
				"duration_ms", duration,
			)
		}
	} else {
		slog.Info("op ok",
			"procedure", procedure,
			"duration_ms", duration,
		)
	}

	metrics.RecordOperation(group, op, outcome, elapsed)
	return resp, err
}

// ObserveErr is Observe for operations that return no value.
func ObserveErr(ctx context.Context, group, op string, fn func(ctx context.Context) error) error {
	_, err := Observe(ctx, group, op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}
