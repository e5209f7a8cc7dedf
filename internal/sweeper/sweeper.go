// Package sweeper runs the periodic expiry sweep in the background, so
// bookings are deactivated on a fixed interval instead of only when a
// client happens to render the sessions view. Both sweep paths share
// the same compare-and-set in the store, so running them side by side
// is safe.
package sweeper

import (
    "context"
    "log"
    "time"

    "github.com/iliyamo/pc-capacity-market/internal/model"
)

// SweepFunc is the expiry operation driven by the runner; it matches
// market.Service.SweepExpiredBookings.
type SweepFunc func(ctx context.Context, now time.Time) ([]model.Booking, error)

// Runner invokes a sweep on a fixed interval until its context is
// cancelled. Errors are logged and the loop keeps going: a transient
// store failure must not stop expiry for good.
type Runner struct {
    sweep    SweepFunc
    interval time.Duration
}

// New returns a Runner calling sweep every interval. Intervals below
// one second are raised to one second.
func New(sweep SweepFunc, interval time.Duration) *Runner {
    if interval < time.Second {
        interval = time.Second
    }
    return &Runner{sweep: sweep, interval: interval}
}

// Run blocks, sweeping on every tick until ctx is cancelled. It is
// intended to be started as a goroutine from main.
func (r *Runner) Run(ctx context.Context) {
    ticker := time.NewTicker(r.interval)
    defer ticker.Stop()
    for {
        select {
        case <-ctx.Done():
            return
        case now := <-ticker.C:
            if _, err := r.sweep(ctx, now); err != nil {
                log.Printf("sweeper: sweep failed: %v", err)
            }
        }
    }
}
