package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the two marketplace tables when they do not
// already exist. The service owns its schema: there is no external
// migration step for this prototype, so startup bootstraps the layout
// the same way the store is expected to find it. Timestamps on
// bookings are Unix seconds.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const slots = `CREATE TABLE IF NOT EXISTS slots (
		id      BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		seller  VARCHAR(255) NOT NULL,
		pc_name VARCHAR(255) NOT NULL,
		hours   INT UNSIGNED NOT NULL,
		price   INT UNSIGNED NOT NULL,
		status  VARCHAR(16)  NOT NULL
	)`
	// start and end are backtick-quoted: END is a reserved word in MySQL.
	const bookings = "CREATE TABLE IF NOT EXISTS bookings (" +
		"id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY, " +
		"slot_id BIGINT UNSIGNED NOT NULL, " +
		"buyer VARCHAR(255) NOT NULL, " +
		"`start` BIGINT NOT NULL, " +
		"`end` BIGINT NOT NULL, " +
		"active TINYINT(1) NOT NULL DEFAULT 1" +
		")"
	if _, err := db.ExecContext(ctx, slots); err != nil {
		return fmt.Errorf("create slots table: %w", err)
	}
	if _, err := db.ExecContext(ctx, bookings); err != nil {
		return fmt.Errorf("create bookings table: %w", err)
	}
	return nil
}
