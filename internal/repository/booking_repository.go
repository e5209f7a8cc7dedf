package repository

import (
    "context"
    "database/sql"
    "fmt"

    "github.com/iliyamo/pc-capacity-market/internal/model"
)

// BookingRepo provides persistence for buyer bookings.  Bookings are
// created active and are only ever mutated once, by the expiry sweep
// flipping the active flag to false.  Rows are never deleted.  Start
// and end timestamps are stored as Unix seconds.
type BookingRepo struct {
    db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// Create inserts a new active booking for the given slot and window and
// populates the generated ID on the returned model.  The slot reference
// is soft: no foreign key is enforced and nothing prevents several
// bookings from referencing the same slot.
func (r *BookingRepo) Create(ctx context.Context, slotID uint64, buyer string, start, end int64) (model.Booking, error) {
    // end is backtick-quoted because END is a reserved word in MySQL.
    const q = "INSERT INTO bookings (slot_id, buyer, `start`, `end`, active) VALUES (?, ?, ?, ?, 1)"
    result, err := r.db.ExecContext(ctx, q, slotID, buyer, start, end)
    if err != nil {
        return model.Booking{}, fmt.Errorf("insert booking: %w", err)
    }
    id, err := result.LastInsertId()
    if err != nil {
        return model.Booking{}, fmt.Errorf("insert booking: %w", err)
    }
    return model.Booking{
        ID:     uint64(id),
        SlotID: slotID,
        Buyer:  buyer,
        Start:  start,
        End:    end,
        Active: true,
    }, nil
}

// ListActive returns all bookings whose active flag is still set, in
// insertion order.  An empty result is a non-nil empty slice.
func (r *BookingRepo) ListActive(ctx context.Context) ([]model.Booking, error) {
    const q = "SELECT id, slot_id, buyer, `start`, `end`, active FROM bookings WHERE active = 1 ORDER BY id"
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, fmt.Errorf("list active bookings: %w", err)
    }
    defer rows.Close()
    bookings := make([]model.Booking, 0)
    for rows.Next() {
        var b model.Booking
        if err := rows.Scan(&b.ID, &b.SlotID, &b.Buyer, &b.Start, &b.End, &b.Active); err != nil {
            return nil, fmt.Errorf("scan booking: %w", err)
        }
        bookings = append(bookings, b)
    }
    if err := rows.Err(); err != nil {
        return nil, fmt.Errorf("list active bookings: %w", err)
    }
    return bookings, nil
}

// Deactivate flips a booking's active flag to false as a compare-and-set:
// the update only matches while the row is still active, so exactly one
// of any number of concurrent callers observes true.  Callers use that
// signal to emit the expiry audit line at most once per booking.  A
// booking that is already inactive is a no-op, not an error.
func (r *BookingRepo) Deactivate(ctx context.Context, id uint64) (bool, error) {
    const q = `UPDATE bookings SET active = 0 WHERE id = ? AND active = 1`
    result, err := r.db.ExecContext(ctx, q, id)
    if err != nil {
        return false, fmt.Errorf("deactivate booking: %w", err)
    }
    n, err := result.RowsAffected()
    if err != nil {
        return false, fmt.Errorf("deactivate booking: %w", err)
    }
    return n > 0, nil
}
