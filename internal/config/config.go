// Package config loads application configuration from environment variables.
package config

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
    "time"    // time parses the sweep interval duration

    "github.com/iliyamo/pc-capacity-market/internal/launcher"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations
// and bounds.  The slot bounds default to the reference limits (hours in
// [1,24], price in [50,1000]) and are configuration, not a hard law.
type Config struct {
    Env          string // application environment (e.g. "dev", "prod")
    Port         string // HTTP port to listen on
    DBUser       string // database username
    DBPass       string // database password (optional)
    DBHost       string // database host address
    DBPort       string // database port number
    DBName       string // database name
    JWTSecret    string // secret used to sign JWTs
    AccessTTLMin int    // access token time-to-live in minutes

    SlotHoursMin uint32 // minimum hours a seller may list
    SlotHoursMax uint32 // maximum hours a seller may list
    SlotPriceMin uint32 // minimum hourly price
    SlotPriceMax uint32 // maximum hourly price

    AuditLogFile    string        // path of the append-only execution log
    LaunchCmd       string        // demo executable run on booking (platform default when unset)
    LauncherWorkers int           // demo launcher worker pool size
    LauncherQueue   int           // demo launcher queue depth
    SweepInterval   time.Duration // period of the background expiry sweep
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message; everything specific
// to the marketplace has a sensible default.
func Load() Config {
    return Config{
        Env:          must("APP_ENV"),      // environment (dev/test/prod)
        Port:         must("APP_PORT"),     // port to bind the HTTP server
        DBUser:       must("DB_USER"),      // database user
        DBPass:       os.Getenv("DB_PASS"), // database password (empty allowed)
        DBHost:       must("DB_HOST"),      // database host
        DBPort:       must("DB_PORT"),      // database port
        DBName:       must("DB_NAME"),      // database name
        JWTSecret:    must("JWT_SECRET"),   // secret used for signing JWTs
        AccessTTLMin: mustInt("ACCESS_TOKEN_TTL_MIN"),

        SlotHoursMin: envUint32("SLOT_HOURS_MIN", 1),
        SlotHoursMax: envUint32("SLOT_HOURS_MAX", 24),
        SlotPriceMin: envUint32("SLOT_PRICE_MIN", 50),
        SlotPriceMax: envUint32("SLOT_PRICE_MAX", 1000),

        AuditLogFile:    getenv("AUDIT_LOG_FILE", "execution.log"),
        LaunchCmd:       getenv("LAUNCH_CMD", launcher.DefaultCommand()),
        LauncherWorkers: envIntDef("LAUNCHER_WORKERS", 4),
        LauncherQueue:   envIntDef("LAUNCHER_QUEUE", 64),
        SweepInterval:   envDurDef("SWEEP_INTERVAL", 30*time.Second),
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

// getenv returns the value of an optional environment variable or the
// provided default when unset.
func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

// envUint32 reads an optional bound, falling back to the default when
// the variable is unset or not a positive integer.
func envUint32(key string, def uint32) uint32 {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    n, err := strconv.ParseUint(v, 10, 32)
    if err != nil || n == 0 {
        log.Printf("config: ignoring invalid %s=%q, using %d", key, v, def)
        return def
    }
    return uint32(n)
}

func envIntDef(key string, def int) int {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    if n, err := strconv.Atoi(v); err == nil && n > 0 {
        return n
    }
    log.Printf("config: ignoring invalid %s=%q, using %d", key, v, def)
    return def
}

func envDurDef(key string, def time.Duration) time.Duration {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    if d, err := time.ParseDuration(v); err == nil && d > 0 {
        return d
    }
    log.Printf("config: ignoring invalid %s=%q, using %s", key, v, def)
    return def
}
