package config

import (
    "testing"
    "time"
)

func TestEnvUint32Defaults(t *testing.T) {
    if got := envUint32("SLOT_HOURS_MAX_TEST", 24); got != 24 {
        t.Fatalf("expected default 24, got %d", got)
    }
    t.Setenv("SLOT_HOURS_MAX_TEST", "12")
    if got := envUint32("SLOT_HOURS_MAX_TEST", 24); got != 12 {
        t.Fatalf("expected 12, got %d", got)
    }
    t.Setenv("SLOT_HOURS_MAX_TEST", "0")
    if got := envUint32("SLOT_HOURS_MAX_TEST", 24); got != 24 {
        t.Fatalf("expected default for zero value, got %d", got)
    }
    t.Setenv("SLOT_HOURS_MAX_TEST", "not-a-number")
    if got := envUint32("SLOT_HOURS_MAX_TEST", 24); got != 24 {
        t.Fatalf("expected default for junk value, got %d", got)
    }
}

func TestEnvDurDef(t *testing.T) {
    if got := envDurDef("SWEEP_INTERVAL_TEST", 30*time.Second); got != 30*time.Second {
        t.Fatalf("expected default 30s, got %s", got)
    }
    t.Setenv("SWEEP_INTERVAL_TEST", "5s")
    if got := envDurDef("SWEEP_INTERVAL_TEST", 30*time.Second); got != 5*time.Second {
        t.Fatalf("expected 5s, got %s", got)
    }
    t.Setenv("SWEEP_INTERVAL_TEST", "-1s")
    if got := envDurDef("SWEEP_INTERVAL_TEST", 30*time.Second); got != 30*time.Second {
        t.Fatalf("expected default for negative duration, got %s", got)
    }
}

func TestGetenvFallsBack(t *testing.T) {
    if got := getenv("AUDIT_LOG_FILE_TEST", "execution.log"); got != "execution.log" {
        t.Fatalf("expected fallback, got %q", got)
    }
    t.Setenv("AUDIT_LOG_FILE_TEST", "custom.log")
    if got := getenv("AUDIT_LOG_FILE_TEST", "execution.log"); got != "custom.log" {
        t.Fatalf("expected override, got %q", got)
    }
}
