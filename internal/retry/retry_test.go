package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errTransient = errors.New("transient failure")

func fastConfig() Config {
	return Config{
		MaxAttempts:         3,
		InitialBackoff:      time.Millisecond,
		MaxBackoff:          5 * time.Millisecond,
		BackoffFactor:       2.0,
		RandomizationFactor: 0.5,
	}
}

func TestWithRetrySucceedsImmediately(t *testing.T) {
	calls := 0
	err := WithRetry("test operation", func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("got %d calls, want 1", calls)
	}
}

func TestWithRetryConfigRecoversFromTransientFailure(t *testing.T) {
	calls := 0
	err := WithRetryConfig("test operation", fastConfig(), func() error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("got %d calls, want 3", calls)
	}
}

func TestWithRetryConfigExhaustsAttempts(t *testing.T) {
	calls := 0
	err := WithRetryConfig("test operation", fastConfig(), func() error {
		calls++
		return errTransient
	})
	if !errors.Is(err, errTransient) {
		t.Fatalf("got %v, want the last attempt's error", err)
	}
	if calls != 3 {
		t.Errorf("got %d calls, want 3", calls)
	}
}

func TestWithRetryContextConfigStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	config := fastConfig()
	config.InitialBackoff = time.Second
	err := WithRetryContextConfig(ctx, "test operation", config, func() error {
		calls++
		cancel()
		return errTransient
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Errorf("got %d calls, want 1 (no retry after cancellation)", calls)
	}
}

func TestWithRetryContextConfigRejectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithRetryContextConfig(ctx, "test operation", fastConfig(), func() error {
		t.Fatal("the operation must not run under a cancelled context")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}
