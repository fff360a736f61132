package resilience

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	DefaultMaxRetries = 3
	DefaultBaseDelay  = time.Second

	// Delay for zero-based attempt n is BaseDelay * 1.5^n * U[0.85, 1.15].
	growthFactor = 1.5
	jitterFactor = 0.15
)

// RetryPolicy bounds how often and how patiently an operation is retried.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: DefaultMaxRetries, BaseDelay: DefaultBaseDelay}
}

func (p RetryPolicy) normalized() RetryPolicy {
	if p.MaxRetries < 0 {
		p.MaxRetries = 0
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = DefaultBaseDelay
	}
	return p
}

func (p RetryPolicy) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.BaseDelay
	b.Multiplier = growthFactor
	b.RandomizationFactor = jitterFactor
	b.MaxInterval = time.Duration(math.MaxInt64)
	b.Reset()
	return b
}

// Executor runs operations under a retry policy, classifying every failure.
//
// Wrapped operations may run more than once; only wrap operations that are
// idempotent or safely repeatable.
type Executor struct {
	classifier *Classifier
	policy     RetryPolicy
	logger     *slog.Logger
}

func NewExecutor(classifier *Classifier, policy RetryPolicy, logger *slog.Logger) *Executor {
	if classifier == nil {
		classifier = defaultClassifier
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		classifier: classifier,
		policy:     policy.normalized(),
		logger:     logger.With("component", "resilience"),
	}
}

// WithPolicy returns a copy of the executor using policy.
func (e *Executor) WithPolicy(policy RetryPolicy) *Executor {
	out := *e
	out.policy = policy.normalized()
	return &out
}

func (e *Executor) Classifier() *Classifier { return e.classifier }

func (e *Executor) Policy() RetryPolicy { return e.policy }

// WithRetry runs op until it succeeds, fails with a category outside
// {network, server, database}, or MaxRetries retries have been spent. The
// returned error is always a *Error carrying a Retry handle.
func WithRetry[T any](ctx context.Context, e *Executor, op func(ctx context.Context) (T, error)) (T, error) {
	attempt := 0
	res, err := backoff.Retry(ctx, func() (T, error) {
		v, opErr := op(ctx)
		if opErr == nil {
			return v, nil
		}
		stdErr := e.classifier.Standardize(opErr)
		if !stdErr.Category.Retryable() {
			e.logger.Debug("operation failed; not retryable", "attempt", attempt, "category", stdErr.Category, "err", opErr)
			return v, backoff.Permanent(stdErr)
		}
		attempt++
		return v, stdErr
	},
		backoff.WithBackOff(e.policy.newBackOff()),
		backoff.WithMaxTries(uint(e.policy.MaxRetries+1)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, delay time.Duration) {
			e.logger.Warn("operation failed; retrying", "attempt", attempt, "delay", delay, "category", CategoryOf(err))
		}),
	)
	if err == nil {
		return res, nil
	}

	var stdErr *Error
	if !errors.As(err, &stdErr) {
		stdErr = e.classifier.Standardize(err)
	}
	e.logger.Error("operation failed", "attempts", attempt, "category", stdErr.Category, "code", stdErr.Code, "err", stdErr.Err)
	var zero T
	return zero, stdErr.withRetry(func(ctx context.Context) error {
		_, err := WithRetry(ctx, e, op)
		return err
	})
}

// Do is WithRetry for operations without a result.
func (e *Executor) Do(ctx context.Context, op func(ctx context.Context) error) error {
	_, err := WithRetry(ctx, e, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}
