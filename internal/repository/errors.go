// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as the
// market service and handlers to distinguish between different failure
// scenarios without inspecting SQL driver errors directly.
package repository

import "errors"

// ErrSlotNotFound is returned when an operation targets a slot ID that
// does not exist in the store. Handlers should translate this into an
// HTTP 404 response.
var ErrSlotNotFound = errors.New("slot not found")

// ErrBookingNotFound is returned when an operation targets a booking ID
// that does not exist in the store. Handlers should translate this into
// an HTTP 404 response.
var ErrBookingNotFound = errors.New("booking not found")
