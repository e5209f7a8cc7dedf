package handler

import (
    "context"  // detached context for the best-effort event publish
    "net/http" // HTTP status codes
    "strconv"  // parsing path parameters
    "time"     // formatting event timestamps

    "github.com/iliyamo/pc-capacity-market/internal/market"
    "github.com/iliyamo/pc-capacity-market/internal/model"
    "github.com/iliyamo/pc-capacity-market/internal/queue"
    "github.com/labstack/echo/v4"
)

// BuyerHandler exposes the buyer dashboard operations: browsing
// approved slots and booking one.  The buyer's name comes from the
// token subject.  Publish, when set, sends a SessionStartedEvent to the
// broker after a successful booking; publishing is best-effort and its
// failure never affects the booking response.
type BuyerHandler struct {
    Market  *market.Service
    Publish func(ctx context.Context, ev queue.SessionStartedEvent) error
}

// NewBuyerHandler constructs a BuyerHandler.  publish may be nil to
// disable event publishing (tests do this).
func NewBuyerHandler(svc *market.Service, publish func(ctx context.Context, ev queue.SessionStartedEvent) error) *BuyerHandler {
    if svc == nil {
        panic("nil service passed to NewBuyerHandler")
    }
    return &BuyerHandler{Market: svc, Publish: publish}
}

// ListApprovedSlots handles GET /v1/slots.  Buyers only ever see
// approved listings; pending submissions stay hidden until the
// administrator acts.
func (h *BuyerHandler) ListApprovedSlots(c echo.Context) error {
    slots, err := h.Market.ListSlots(c.Request().Context(), model.SlotStatusApproved)
    if err != nil {
        return writeMarketError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"slots": slots})
}

// BookSlot handles POST /v1/slots/:id/book.  On success it returns the
// created booking with a 201 status; the demo session launch and the
// broker event both happen after the fact and never change the
// response.  Booking a pending or unknown slot returns 404; a missing
// buyer name returns 400.
func (h *BuyerHandler) BookSlot(c echo.Context) error {
    slotID, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || slotID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid slot id"})
    }
    buyer := currentName(c)
    ctx := c.Request().Context()
    booking, err := h.Market.BookSlot(ctx, slotID, buyer)
    if err != nil {
        return writeMarketError(c, err)
    }
    if h.Publish != nil {
        if slot, serr := h.Market.GetSlot(ctx, booking.SlotID); serr == nil {
            ev := queue.SessionStartedEvent{
                BookingID: booking.ID,
                SlotID:    slot.ID,
                Buyer:     booking.Buyer,
                Seller:    slot.Seller,
                PCName:    slot.PCName,
                Hours:     slot.Hours,
                Price:     slot.Price,
                StartsAt:  time.Unix(booking.Start, 0).UTC().Format(time.RFC3339),
                EndsAt:    time.Unix(booking.End, 0).UTC().Format(time.RFC3339),
            }
            // Detached from the request: the broker may be slow or down
            // and the booking is already committed.
            go func() { _ = h.Publish(context.Background(), ev) }()
        }
    }
    return c.JSON(http.StatusCreated, echo.Map{"booking": booking})
}
