package handler

import (
    "net/http" // HTTP status codes
    "time"     // current time for the sweep and remaining computation

    "github.com/iliyamo/pc-capacity-market/internal/market"
    "github.com/labstack/echo/v4"
)

// SessionHandler exposes the shared active-sessions view.  Every
// request first runs an expiry sweep with the current time and then
// lists what is still active, mirroring the prototype's render cycle;
// the background sweeper covers the gaps between requests.
type SessionHandler struct {
    Market *market.Service
}

// NewSessionHandler constructs a SessionHandler and panics on a nil service.
func NewSessionHandler(svc *market.Service) *SessionHandler {
    if svc == nil {
        panic("nil service passed to NewSessionHandler")
    }
    return &SessionHandler{Market: svc}
}

// sessionView is the per-booking response shape: the booking window
// plus the remaining seconds recomputed on demand from the stored end.
type sessionView struct {
    BookingID        uint64 `json:"booking_id"`
    SlotID           uint64 `json:"slot_id"`
    Buyer            string `json:"buyer"`
    Start            int64  `json:"start"`
    End              int64  `json:"end"`
    RemainingSeconds int64  `json:"remaining_seconds"`
}

// ListSessions handles GET /v1/sessions for any authenticated role.
// Bookings that expired during this request are reported once in the
// "ended" list (the prototype's one-time warning); subsequent requests
// no longer mention them.
func (h *SessionHandler) ListSessions(c echo.Context) error {
    ctx := c.Request().Context()
    now := time.Now()
    expired, err := h.Market.SweepExpiredBookings(ctx, now)
    if err != nil {
        return writeMarketError(c, err)
    }
    active, err := h.Market.ListActiveBookings(ctx)
    if err != nil {
        return writeMarketError(c, err)
    }
    sessions := make([]sessionView, 0, len(active))
    for _, b := range active {
        remaining := b.End - now.Unix()
        if remaining < 0 {
            remaining = 0
        }
        sessions = append(sessions, sessionView{
            BookingID:        b.ID,
            SlotID:           b.SlotID,
            Buyer:            b.Buyer,
            Start:            b.Start,
            End:              b.End,
            RemainingSeconds: remaining,
        })
    }
    endedIDs := make([]uint64, 0, len(expired))
    for _, b := range expired {
        endedIDs = append(endedIDs, b.ID)
    }
    return c.JSON(http.StatusOK, echo.Map{
        "active": sessions,
        "ended":  endedIDs,
    })
}
