// Package market implements the marketplace lifecycle operations:
// slot submission and approval, booking creation and the expiry sweep.
// It is the only mutator of the persistent store; handlers call into
// this package and translate its errors into HTTP responses.
package market

import (
    "errors"
    "fmt"
)

// ErrSlotNotApproved is returned when a buyer attempts to book a slot
// that exists but has not been approved by the administrator. The
// original prototype merely hid pending slots from buyers; here the
// rule is enforced at the operation itself.
var ErrSlotNotApproved = errors.New("slot not approved")

// ValidationError reports user input that fails the configured rules,
// such as an empty name or an out-of-range hours or price value.
// Handlers translate it into an HTTP 400 response.
type ValidationError struct {
    Field  string // which input was rejected
    Reason string // why it was rejected
}

func (e *ValidationError) Error() string {
    return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AsValidation reports whether err is (or wraps) a ValidationError.
func AsValidation(err error) (*ValidationError, bool) {
    var ve *ValidationError
    if errors.As(err, &ve) {
        return ve, true
    }
    return nil, false
}
