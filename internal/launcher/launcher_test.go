package launcher

import (
    "context"
    "path/filepath"
    "strings"
    "testing"
    "time"

    "github.com/iliyamo/pc-capacity-market/internal/audit"
)

func newTestPool(t *testing.T, cmd string) (*Pool, *audit.Logger) {
    t.Helper()
    logPath := filepath.Join(t.TempDir(), "execution.log")
    auditLog := audit.New(logPath)
    p := NewPool(cmd, 2, 8, auditLog)
    t.Cleanup(func() {
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        _ = p.Shutdown(ctx)
    })
    return p, auditLog
}

func waitDone(t *testing.T, h *Handle) {
    t.Helper()
    select {
    case <-h.Done():
    case <-time.After(5 * time.Second):
        t.Fatal("timeout waiting for launch to finish")
    }
}

// waitForLine polls the audit log until it contains the substring.
func waitForLine(t *testing.T, auditLog *audit.Logger, substr string) {
    t.Helper()
    deadline := time.Now().Add(5 * time.Second)
    for time.Now().Before(deadline) {
        content, err := auditLog.Read()
        if err != nil {
            t.Fatalf("read audit log: %v", err)
        }
        if strings.Contains(content, substr) {
            return
        }
        time.Sleep(10 * time.Millisecond)
    }
    t.Fatalf("timeout waiting for audit line %q", substr)
}

func TestLaunchLogsSuccess(t *testing.T) {
    p, auditLog := newTestPool(t, "true")
    h := p.Submit(7)
    waitDone(t, h)

    content, err := auditLog.Read()
    if err != nil {
        t.Fatalf("read audit log: %v", err)
    }
    if !strings.Contains(content, "Launching demo application") {
        t.Fatal("expected launching audit line")
    }
    if !strings.Contains(content, "Application launched successfully") {
        t.Fatal("expected success audit line")
    }
}

func TestLaunchFailureIsLoggedAndSwallowed(t *testing.T) {
    p, auditLog := newTestPool(t, "definitely-not-an-installed-command")
    h := p.Submit(7)
    waitDone(t, h)

    content, err := auditLog.Read()
    if err != nil {
        t.Fatalf("read audit log: %v", err)
    }
    if !strings.Contains(content, "Launch failed:") {
        t.Fatalf("expected failure audit line, got %q", content)
    }
    if strings.Contains(content, "Application launched successfully") {
        t.Fatal("did not expect a success line for a failed launch")
    }
}

func TestCancelKillsRunningLaunch(t *testing.T) {
    p, auditLog := newTestPool(t, "sleep 30")
    h := p.Submit(7)
    waitForLine(t, auditLog, "Application launched successfully")

    h.Cancel()
    waitDone(t, h)
}

func TestShutdownDrainsRunningLaunches(t *testing.T) {
    logPath := filepath.Join(t.TempDir(), "execution.log")
    auditLog := audit.New(logPath)
    p := NewPool("sleep 30", 1, 4, auditLog)
    p.Submit(1)
    waitForLine(t, auditLog, "Application launched successfully")

    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    if err := p.Shutdown(ctx); err != nil {
        t.Fatalf("Shutdown: %v", err)
    }
}

func TestQueueFullDropsLaunch(t *testing.T) {
    logPath := filepath.Join(t.TempDir(), "execution.log")
    auditLog := audit.New(logPath)
    p := NewPool("sleep 30", 1, 1, auditLog)
    t.Cleanup(func() {
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        _ = p.Shutdown(ctx)
    })

    // Occupy the single worker, then fill the single queue slot.
    p.Submit(1)
    waitForLine(t, auditLog, "Application launched successfully")
    p.Submit(2)

    // The third submission has nowhere to go: its handle must come back
    // already done and the drop must be audited.
    h := p.Submit(3)
    select {
    case <-h.Done():
    default:
        t.Fatal("expected dropped launch handle to be done immediately")
    }
    waitForLine(t, auditLog, "Launch failed: launcher queue full")
}

func TestDefaultCommandIsPlatformSpecific(t *testing.T) {
    cmd := DefaultCommand()
    if cmd == "" {
        t.Fatal("expected a default command")
    }
}
