// Package queue defines message payloads exchanged over the message broker.
package queue

// SessionStartedEvent is published when a buyer successfully books a
// slot and a session window opens. It carries enough information for
// downstream consumers to log, notify, or trigger analytics without
// querying the primary database.
type SessionStartedEvent struct {
    BookingID uint64 `json:"booking_id"`
    SlotID    uint64 `json:"slot_id"`
    Buyer     string `json:"buyer"`
    Seller    string `json:"seller"`
    PCName    string `json:"pc_name"`
    Hours     uint32 `json:"hours"`
    Price     uint32 `json:"price"`
    StartsAt  string `json:"starts_at"`
    EndsAt    string `json:"ends_at"`
}
