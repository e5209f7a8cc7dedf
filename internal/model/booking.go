package model

// Booking records a buyer's reservation against an approved slot.
// The reservation window is fixed at creation: End is always
// Start + hours*3600 using the slot's hours at booking time.  The
// Active flag stays true until an expiry sweep observes End has
// passed, at which point it is flipped to false exactly once.
//
// Fields:
//  ID     – primary key identifier, assigned on insert.
//  SlotID – soft reference to the booked slot (no enforced FK, and
//           deliberately no exclusivity: many bookings may reference
//           one slot).
//  Buyer  – name of the buyer who reserved the slot.
//  Start  – session start as Unix seconds.
//  End    – session end as Unix seconds (always after Start).
//  Active – whether the session window is still running.
type Booking struct {
    ID     uint64 `json:"id"`      // bookings.id
    SlotID uint64 `json:"slot_id"` // bookings.slot_id
    Buyer  string `json:"buyer"`   // bookings.buyer
    Start  int64  `json:"start"`   // bookings.start
    End    int64  `json:"end"`     // bookings.end
    Active bool   `json:"active"`  // bookings.active
}
