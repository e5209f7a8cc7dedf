// Package launcher runs the demonstration session process that stands
// in for a real remote-session launch. Launches are submitted to a
// bounded worker pool and are strictly fire-and-forget from the
// booking's point of view: every outcome is recorded in the audit log
// and nothing is ever propagated back to the caller. Unlike a bare
// goroutine, each launch carries a cancellable handle so a hardened
// deployment can add timeouts or cancellation without redesign.
package launcher

import (
    "context"
    "os/exec"
    "runtime"
    "strings"
    "sync"

    "github.com/iliyamo/pc-capacity-market/internal/audit"
)

// DefaultCommand returns the platform demonstration executable used
// when no command is configured: notepad on Windows, xeyes elsewhere.
func DefaultCommand() string {
    if runtime.GOOS == "windows" {
        return "notepad.exe"
    }
    return "xeyes"
}

// Handle tracks a single submitted launch. Cancel kills the demo
// process if it is still running; Done is closed once the launch
// attempt (and the process it started, if any) has finished.
type Handle struct {
    BookingID uint64

    ctx    context.Context
    cancel context.CancelFunc
    done   chan struct{}
}

// Cancel terminates the launch: a queued launch will be skipped, a
// running demo process will be killed.
func (h *Handle) Cancel() { h.cancel() }

// Done returns a channel closed when the launch has fully completed.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Pool is a bounded worker pool executing demo launches. The worker
// count bounds how many demo processes run at once; the queue bounds
// how many launches may wait behind them.
type Pool struct {
    cmd   string
    audit *audit.Logger

    base   context.Context
    cancel context.CancelFunc
    jobs   chan *Handle
    wg     sync.WaitGroup
}

// NewPool starts workers executing the given command for each launch.
// The command may include arguments separated by spaces. Workers run
// until Shutdown is called.
func NewPool(cmd string, workers, queueDepth int, auditLog *audit.Logger) *Pool {
    if cmd == "" {
        cmd = DefaultCommand()
    }
    if workers < 1 {
        workers = 1
    }
    if queueDepth < 1 {
        queueDepth = 1
    }
    base, cancel := context.WithCancel(context.Background())
    p := &Pool{
        cmd:    cmd,
        audit:  auditLog,
        base:   base,
        cancel: cancel,
        jobs:   make(chan *Handle, queueDepth),
    }
    for i := 0; i < workers; i++ {
        p.wg.Add(1)
        go p.worker()
    }
    return p
}

// Launch satisfies market.SessionLauncher: it submits a launch for the
// booking and deliberately discards the handle, keeping the reference
// policy of never waiting on the session process.
func (p *Pool) Launch(bookingID uint64) { p.Submit(bookingID) }

// Submit enqueues a launch and returns its handle. When the queue is
// full the launch is dropped and recorded as failed; the returned
// handle is already done. Submit never blocks the caller.
func (p *Pool) Submit(bookingID uint64) *Handle {
    ctx, cancel := context.WithCancel(p.base)
    h := &Handle{BookingID: bookingID, ctx: ctx, cancel: cancel, done: make(chan struct{})}
    select {
    case p.jobs <- h:
    default:
        p.audit.Event("Launch failed: launcher queue full")
        cancel()
        close(h.done)
    }
    return h
}

// Shutdown stops accepting work, cancels every queued and running
// launch and waits for the workers to drain or for ctx to expire.
func (p *Pool) Shutdown(ctx context.Context) error {
    p.cancel()
    drained := make(chan struct{})
    go func() {
        p.wg.Wait()
        close(drained)
    }()
    select {
    case <-drained:
        return nil
    case <-ctx.Done():
        return ctx.Err()
    }
}

func (p *Pool) worker() {
    defer p.wg.Done()
    for {
        select {
        case <-p.base.Done():
            return
        case h := <-p.jobs:
            p.run(h)
        }
    }
}

// run performs one launch attempt. Every path is logged and swallowed:
// errors never escape the launcher boundary and are never retried. The
// worker stays occupied until the demo process exits, which is what
// bounds the number of simultaneously running demos.
func (p *Pool) run(h *Handle) {
    defer close(h.done)
    defer h.cancel()
    if h.ctx.Err() != nil {
        return
    }
    p.audit.Event("Launching demo application")
    parts := strings.Fields(p.cmd)
    cmd := exec.CommandContext(h.ctx, parts[0], parts[1:]...)
    if err := cmd.Start(); err != nil {
        p.audit.Event("Launch failed: %v", err)
        return
    }
    p.audit.Event("Application launched successfully")
    _ = cmd.Wait() // reap; returns when the demo exits or the handle is cancelled
}
