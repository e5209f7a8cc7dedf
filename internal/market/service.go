package market

import (
    "context"
    "fmt"
    "time"

    "github.com/iliyamo/pc-capacity-market/internal/audit"
    "github.com/iliyamo/pc-capacity-market/internal/model"
)

// SlotStore is the slot persistence surface the service depends on.
// It is implemented by repository.SlotRepo and by in-memory fakes in
// tests.
type SlotStore interface {
    Create(ctx context.Context, seller, pcName string, hours, price uint32) (model.Slot, error)
    GetByID(ctx context.Context, id uint64) (model.Slot, error)
    List(ctx context.Context, statusFilter string) ([]model.Slot, error)
    UpdateStatus(ctx context.Context, id uint64, status string) (bool, error)
}

// BookingStore is the booking persistence surface the service depends
// on. Deactivate must behave as a compare-and-set on the active flag:
// it reports true only for the caller that actually performed the flip.
type BookingStore interface {
    Create(ctx context.Context, slotID uint64, buyer string, start, end int64) (model.Booking, error)
    ListActive(ctx context.Context) ([]model.Booking, error)
    Deactivate(ctx context.Context, id uint64) (bool, error)
}

// SessionLauncher starts the demonstration session process for a
// booking. Implementations run detached from the booking request:
// nothing about the launch outcome is reported back to the caller.
type SessionLauncher interface {
    Launch(bookingID uint64)
}

// Bounds holds the configured validation limits for slot submission.
// The defaults mirror the original prototype's input widgets: hours in
// [1,24] and price in [50,1000]. They are configuration, not a hard law.
type Bounds struct {
    HoursMin uint32
    HoursMax uint32
    PriceMin uint32
    PriceMax uint32
}

// DefaultBounds returns the reference limits.
func DefaultBounds() Bounds {
    return Bounds{HoursMin: 1, HoursMax: 24, PriceMin: 50, PriceMax: 1000}
}

// Service implements the marketplace lifecycle. All state transitions
// funnel through it: slots only ever move pending -> approved, bookings
// only ever move active -> inactive, and every transition appends an
// audit line. The launcher is optional; when nil, bookings succeed
// without a session process (used by tests and by deployments that
// disable the demo launch).
type Service struct {
    Slots    SlotStore
    Bookings BookingStore
    Audit    *audit.Logger
    Launcher SessionLauncher
    Bounds   Bounds

    // Now supplies the current time for booking windows; tests
    // substitute a fixed clock.
    Now func() time.Time
}

// NewService constructs a Service with the given dependencies. Slots,
// bookings and audit must be non-nil; launcher may be nil.
func NewService(slots SlotStore, bookings BookingStore, auditLog *audit.Logger, launcher SessionLauncher, bounds Bounds) *Service {
    if slots == nil || bookings == nil || auditLog == nil {
        panic("nil dependency passed to NewService")
    }
    return &Service{
        Slots:    slots,
        Bookings: bookings,
        Audit:    auditLog,
        Launcher: launcher,
        Bounds:   bounds,
        Now:      time.Now,
    }
}

// SubmitSlot validates the seller's input and persists a new pending
// slot. Hours and price must fall within the configured bounds and
// both names must be non-empty. On success the slot is audited as
// submitted and returned with its assigned ID.
func (s *Service) SubmitSlot(ctx context.Context, seller, pcName string, hours, price uint32) (model.Slot, error) {
    if seller == "" {
        return model.Slot{}, &ValidationError{Field: "seller", Reason: "must not be empty"}
    }
    if pcName == "" {
        return model.Slot{}, &ValidationError{Field: "pc_name", Reason: "must not be empty"}
    }
    if hours < s.Bounds.HoursMin || hours > s.Bounds.HoursMax {
        return model.Slot{}, &ValidationError{
            Field:  "hours",
            Reason: fmt.Sprintf("must be between %d and %d", s.Bounds.HoursMin, s.Bounds.HoursMax),
        }
    }
    if price < s.Bounds.PriceMin || price > s.Bounds.PriceMax {
        return model.Slot{}, &ValidationError{
            Field:  "price",
            Reason: fmt.Sprintf("must be between %d and %d", s.Bounds.PriceMin, s.Bounds.PriceMax),
        }
    }
    slot, err := s.Slots.Create(ctx, seller, pcName, hours, price)
    if err != nil {
        return model.Slot{}, err
    }
    s.Audit.Event("Seller %s created slot for %s", seller, pcName)
    return slot, nil
}

// ApproveSlot transitions a pending slot to approved. Approving an
// already-approved slot is a silent no-op: no error, no duplicate audit
// line, no state change. An unknown ID yields ErrSlotNotFound from the
// store.
func (s *Service) ApproveSlot(ctx context.Context, id uint64) (model.Slot, error) {
    changed, err := s.Slots.UpdateStatus(ctx, id, model.SlotStatusApproved)
    if err != nil {
        return model.Slot{}, err
    }
    if changed {
        s.Audit.Event("Admin approved slot %d", id)
    }
    return s.Slots.GetByID(ctx, id)
}

// BookSlot reserves an approved slot for the buyer. The session window
// starts now and ends after the slot's stored hours. The demo session
// launch is submitted to the launcher and immediately forgotten: its
// outcome never affects the booking's success. Nothing prevents two
// buyers from booking the same slot; the marketplace has no capacity
// or exclusivity notion.
func (s *Service) BookSlot(ctx context.Context, slotID uint64, buyer string) (model.Booking, error) {
    if buyer == "" {
        return model.Booking{}, &ValidationError{Field: "buyer", Reason: "must not be empty"}
    }
    slot, err := s.Slots.GetByID(ctx, slotID)
    if err != nil {
        return model.Booking{}, err
    }
    if slot.Status != model.SlotStatusApproved {
        return model.Booking{}, ErrSlotNotApproved
    }
    start := s.Now().Unix()
    end := start + int64(slot.Hours)*3600
    booking, err := s.Bookings.Create(ctx, slot.ID, buyer, start, end)
    if err != nil {
        return model.Booking{}, err
    }
    s.Audit.Event("Buyer %s booked slot %d", buyer, slot.ID)
    if s.Launcher != nil {
        s.Launcher.Launch(booking.ID)
    }
    return booking, nil
}

// SweepExpiredBookings deactivates every active booking whose end time
// has passed now. It returns the bookings this call expired. The flip
// is a compare-and-set in the store, so the sweep is idempotent and
// safe under concurrent callers: for any booking, exactly one sweep
// wins the flip and appends the "Session N ended" audit line.
func (s *Service) SweepExpiredBookings(ctx context.Context, now time.Time) ([]model.Booking, error) {
    active, err := s.Bookings.ListActive(ctx)
    if err != nil {
        return nil, err
    }
    expired := make([]model.Booking, 0)
    for _, b := range active {
        if b.End > now.Unix() {
            continue
        }
        flipped, err := s.Bookings.Deactivate(ctx, b.ID)
        if err != nil {
            return expired, err
        }
        if flipped {
            s.Audit.Event("Session %d ended", b.ID)
            b.Active = false
            expired = append(expired, b)
        }
    }
    return expired, nil
}

// ListSlots returns slots in insertion order, optionally filtered by
// status. It exists so the presentation layer never touches the store
// directly.
func (s *Service) ListSlots(ctx context.Context, statusFilter string) ([]model.Slot, error) {
    return s.Slots.List(ctx, statusFilter)
}

// GetSlot returns a single slot by ID, with ErrSlotNotFound from the
// store when it does not exist.
func (s *Service) GetSlot(ctx context.Context, id uint64) (model.Slot, error) {
    return s.Slots.GetByID(ctx, id)
}

// ListActiveBookings returns all bookings still marked active.
func (s *Service) ListActiveBookings(ctx context.Context) ([]model.Booking, error) {
    return s.Bookings.ListActive(ctx)
}
