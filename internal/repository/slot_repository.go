package repository

import (
    "context"
    "database/sql"
    "errors"
    "fmt"

    "github.com/iliyamo/pc-capacity-market/internal/model"
)

// SlotRepo provides persistence for seller slots.  A slot row never
// changes after insertion except for its status column, which only
// ever moves from pending to approved.  Rows are never deleted.
type SlotRepo struct {
    db *sql.DB
}

// NewSlotRepo returns a new SlotRepo bound to the given database.
func NewSlotRepo(db *sql.DB) *SlotRepo { return &SlotRepo{db: db} }

// Create inserts a new slot with the given attributes and the pending
// status, populates the generated ID on the returned model and wraps
// any driver error.  Input validation (non-empty names, bounds on
// hours and price) is the caller's responsibility.
func (r *SlotRepo) Create(ctx context.Context, seller, pcName string, hours, price uint32) (model.Slot, error) {
    const q = `INSERT INTO slots (seller, pc_name, hours, price, status) VALUES (?, ?, ?, ?, ?)`
    result, err := r.db.ExecContext(ctx, q, seller, pcName, hours, price, model.SlotStatusPending)
    if err != nil {
        return model.Slot{}, fmt.Errorf("insert slot: %w", err)
    }
    id, err := result.LastInsertId()
    if err != nil {
        return model.Slot{}, fmt.Errorf("insert slot: %w", err)
    }
    return model.Slot{
        ID:     uint64(id),
        Seller: seller,
        PCName: pcName,
        Hours:  hours,
        Price:  price,
        Status: model.SlotStatusPending,
    }, nil
}

// GetByID returns a single slot by its identifier.  When no row exists
// ErrSlotNotFound is returned.
func (r *SlotRepo) GetByID(ctx context.Context, id uint64) (model.Slot, error) {
    const q = `SELECT id, seller, pc_name, hours, price, status FROM slots WHERE id = ?`
    var s model.Slot
    err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.Seller, &s.PCName, &s.Hours, &s.Price, &s.Status)
    if errors.Is(err, sql.ErrNoRows) {
        return model.Slot{}, ErrSlotNotFound
    }
    if err != nil {
        return model.Slot{}, fmt.Errorf("select slot: %w", err)
    }
    return s, nil
}

// List returns all slots in insertion order.  When statusFilter is
// non-empty only slots with that status are returned.  An empty result
// is a non-nil empty slice, not an error.
func (r *SlotRepo) List(ctx context.Context, statusFilter string) ([]model.Slot, error) {
    q := `SELECT id, seller, pc_name, hours, price, status FROM slots ORDER BY id`
    args := []interface{}{}
    if statusFilter != "" {
        q = `SELECT id, seller, pc_name, hours, price, status FROM slots WHERE status = ? ORDER BY id`
        args = append(args, statusFilter)
    }
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, fmt.Errorf("list slots: %w", err)
    }
    defer rows.Close()
    slots := make([]model.Slot, 0)
    for rows.Next() {
        var s model.Slot
        if err := rows.Scan(&s.ID, &s.Seller, &s.PCName, &s.Hours, &s.Price, &s.Status); err != nil {
            return nil, fmt.Errorf("scan slot: %w", err)
        }
        slots = append(slots, s)
    }
    if err := rows.Err(); err != nil {
        return nil, fmt.Errorf("list slots: %w", err)
    }
    return slots, nil
}

// UpdateStatus transitions a slot to the given status.  The update is
// conditional on the row still being in a different status, so applying
// the same transition twice is a no-op.  It returns true when this call
// performed the transition and false when the slot was already in the
// requested status.  ErrSlotNotFound is returned when the ID does not
// exist at all.
func (r *SlotRepo) UpdateStatus(ctx context.Context, id uint64, status string) (bool, error) {
    const q = `UPDATE slots SET status = ? WHERE id = ? AND status <> ?`
    result, err := r.db.ExecContext(ctx, q, status, id, status)
    if err != nil {
        return false, fmt.Errorf("update slot status: %w", err)
    }
    n, err := result.RowsAffected()
    if err != nil {
        return false, fmt.Errorf("update slot status: %w", err)
    }
    if n > 0 {
        return true, nil
    }
    // Nothing changed: either the slot is already in the requested
    // status or it does not exist. Distinguish the two cases.
    if _, err := r.GetByID(ctx, id); err != nil {
        return false, err
    }
    return false, nil
}
