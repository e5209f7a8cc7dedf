package model

// Slot statuses.  A slot is created in StatusPending and may only ever
// move to StatusApproved; there is no reject or withdraw transition.
const (
    SlotStatusPending  = "pending"
    SlotStatusApproved = "approved"
)

// Slot represents a seller's offer of machine time: a block of hours
// on a named PC at an hourly price.  Slots are gated by administrator
// approval before buyers can see or book them.
//
// Fields:
//  ID     – primary key identifier, assigned on insert.
//  Seller – name of the seller listing the machine.
//  PCName – name of the machine being offered (e.g. "Gaming-PC-01").
//  Hours  – duration of the offer in whole hours (positive).
//  Price  – price per hour in whole currency units (positive).
//  Status – current state of the slot (pending, approved).
type Slot struct {
    ID     uint64 `json:"id"`      // slots.id
    Seller string `json:"seller"`  // slots.seller
    PCName string `json:"pc_name"` // slots.pc_name
    Hours  uint32 `json:"hours"`   // slots.hours
    Price  uint32 `json:"price"`   // slots.price
    Status string `json:"status"`  // slots.status
}
