package handler

import (
    "net/http" // HTTP status codes
    "strconv"  // parsing path parameters

    "github.com/iliyamo/pc-capacity-market/internal/market"
    "github.com/labstack/echo/v4"
)

// AdminHandler exposes the administrator panel operations: reviewing
// every submitted slot and approving pending ones.  Role enforcement
// happens in middleware; these methods assume an ADMIN token.
type AdminHandler struct {
    Market *market.Service
}

// NewAdminHandler constructs an AdminHandler and panics on a nil service.
func NewAdminHandler(svc *market.Service) *AdminHandler {
    if svc == nil {
        panic("nil service passed to NewAdminHandler")
    }
    return &AdminHandler{Market: svc}
}

// ListSlots handles GET /v1/admin/slots.  It returns every slot in
// insertion order regardless of status, so the administrator sees both
// pending submissions and already-approved listings.
func (h *AdminHandler) ListSlots(c echo.Context) error {
    slots, err := h.Market.ListSlots(c.Request().Context(), "")
    if err != nil {
        return writeMarketError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"slots": slots})
}

// ApproveSlot handles POST /v1/admin/slots/:id/approve.  Approving an
// already-approved slot is a no-op and still returns 200 with the slot,
// so the operation is safe to retry.  Unknown IDs return 404.
func (h *AdminHandler) ApproveSlot(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid slot id"})
    }
    slot, err := h.Market.ApproveSlot(c.Request().Context(), id)
    if err != nil {
        return writeMarketError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"slot": slot})
}
