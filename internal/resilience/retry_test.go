package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastExecutor(maxRetries int) *Executor {
	return NewExecutor(NewClassifier(nil), RetryPolicy{MaxRetries: maxRetries, BaseDelay: time.Millisecond}, nil)
}

func TestWithRetry_RetryBound(t *testing.T) {
	for _, maxRetries := range []int{0, 1, 3} {
		calls := 0
		_, err := WithRetry(context.Background(), fastExecutor(maxRetries), func(context.Context) (int, error) {
			calls++
			return 0, &StatusError{StatusCode: 503}
		})
		if calls != maxRetries+1 {
			t.Fatalf("maxRetries=%d: expected %d attempts, got %d", maxRetries, maxRetries+1, calls)
		}
		var stdErr *Error
		if !errors.As(err, &stdErr) || stdErr.Category != CategoryServer {
			t.Fatalf("expected server error, got %v", err)
		}
	}
}

func TestWithRetry_NonRetryableStopsImmediately(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Category
	}{
		{"validation", &StatusError{StatusCode: 400}, CategoryValidation},
		{"authentication", errors.New("invalid credential"), CategoryAuthentication},
		{"not found", &StatusError{StatusCode: 404}, CategoryNotFound},
		{"unknown", errors.New("boom"), CategoryUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			_, err := WithRetry(context.Background(), fastExecutor(3), func(context.Context) (string, error) {
				calls++
				return "", tc.err
			})
			if calls != 1 {
				t.Fatalf("expected a single attempt, got %d", calls)
			}
			if CategoryOf(err) != tc.want {
				t.Fatalf("expected %s, got %v", tc.want, err)
			}
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected original error to be kept")
			}
		})
	}
}

func TestWithRetry_RecoversFromTransientFailure(t *testing.T) {
	calls := 0
	v, err := WithRetry(context.Background(), fastExecutor(3), func(context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("connection refused")
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "ok" || calls != 3 {
		t.Fatalf("expected ok after 3 calls, got %q after %d", v, calls)
	}
}

func TestWithRetry_RetryHandle(t *testing.T) {
	calls := 0
	fail := true
	_, err := WithRetry(context.Background(), fastExecutor(0), func(context.Context) (int, error) {
		calls++
		if fail {
			return 0, &StatusError{StatusCode: 400}
		}
		return 1, nil
	})
	var stdErr *Error
	if !errors.As(err, &stdErr) || !stdErr.CanRetry() {
		t.Fatalf("expected retryable handle, got %v", err)
	}

	fail = false
	if err := stdErr.Retry(context.Background()); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected operation to run again, calls=%d", calls)
	}

	plain := Standardize(errors.New("x"))
	if !errors.Is(plain.Retry(context.Background()), ErrNoRetry) {
		t.Fatalf("expected ErrNoRetry without handle")
	}
}

func TestExecutor_Do(t *testing.T) {
	calls := 0
	err := fastExecutor(2).Do(context.Background(), func(context.Context) error {
		calls++
		return nil
	})
	if err != nil || calls != 1 {
		t.Fatalf("expected one successful call, got err=%v calls=%d", err, calls)
	}
}

func TestRetryPolicy_BackOffGrowthAndJitter(t *testing.T) {
	p := RetryPolicy{MaxRetries: 3, BaseDelay: time.Second}.normalized()
	b := p.newBackOff()

	nominal := time.Second
	for attempt := 0; attempt < 4; attempt++ {
		d := b.NextBackOff()
		lo := time.Duration(float64(nominal)*(1-jitterFactor)) - time.Microsecond
		hi := time.Duration(float64(nominal)*(1+jitterFactor)) + time.Microsecond
		if d < lo || d > hi {
			t.Fatalf("attempt %d: delay %v outside [%v, %v]", attempt, d, lo, hi)
		}
		nominal = time.Duration(float64(nominal) * growthFactor)
	}
}

func TestRetryPolicy_Normalized(t *testing.T) {
	p := RetryPolicy{MaxRetries: -2}.normalized()
	if p.MaxRetries != 0 || p.BaseDelay != DefaultBaseDelay {
		t.Fatalf("unexpected normalized policy: %+v", p)
	}
	if d := DefaultRetryPolicy(); d.MaxRetries != 3 || d.BaseDelay != time.Second {
		t.Fatalf("unexpected default policy: %+v", d)
	}
}
