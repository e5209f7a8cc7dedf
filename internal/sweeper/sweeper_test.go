package sweeper

import (
    "context"
    "errors"
    "sync/atomic"
    "testing"
    "time"

    "github.com/iliyamo/pc-capacity-market/internal/model"
)

func TestRunnerSweepsOnInterval(t *testing.T) {
    var calls int64
    sweep := func(ctx context.Context, now time.Time) ([]model.Booking, error) {
        atomic.AddInt64(&calls, 1)
        return nil, nil
    }
    r := New(sweep, time.Second)
    r.interval = 10 * time.Millisecond

    ctx, cancel := context.WithCancel(context.Background())
    done := make(chan struct{})
    go func() {
        r.Run(ctx)
        close(done)
    }()

    deadline := time.Now().Add(2 * time.Second)
    for atomic.LoadInt64(&calls) < 3 && time.Now().Before(deadline) {
        time.Sleep(5 * time.Millisecond)
    }
    cancel()
    select {
    case <-done:
    case <-time.After(time.Second):
        t.Fatal("runner did not stop after cancel")
    }
    if atomic.LoadInt64(&calls) < 3 {
        t.Fatalf("expected at least 3 sweeps, got %d", calls)
    }
}

func TestRunnerKeepsGoingAfterSweepError(t *testing.T) {
    var calls int64
    sweep := func(ctx context.Context, now time.Time) ([]model.Booking, error) {
        atomic.AddInt64(&calls, 1)
        return nil, errors.New("store unreachable")
    }
    r := New(sweep, time.Second)
    r.interval = 10 * time.Millisecond

    ctx, cancel := context.WithCancel(context.Background())
    defer cancel()
    go r.Run(ctx)

    deadline := time.Now().Add(2 * time.Second)
    for atomic.LoadInt64(&calls) < 2 && time.Now().Before(deadline) {
        time.Sleep(5 * time.Millisecond)
    }
    if atomic.LoadInt64(&calls) < 2 {
        t.Fatal("expected the runner to keep sweeping after an error")
    }
}

func TestNewRaisesTinyIntervals(t *testing.T) {
    r := New(func(context.Context, time.Time) ([]model.Booking, error) { return nil, nil }, time.Millisecond)
    if r.interval != time.Second {
        t.Fatalf("expected interval raised to 1s, got %s", r.interval)
    }
}
