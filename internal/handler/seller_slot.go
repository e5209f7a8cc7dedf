package handler

import (
    "net/http" // HTTP status codes

    "github.com/iliyamo/pc-capacity-market/internal/market"
    "github.com/labstack/echo/v4"
)

// SellerHandler exposes the seller dashboard operation: submitting a
// machine-time slot for administrator approval.  The seller's name is
// the display name chosen at role selection and carried in the token.
type SellerHandler struct {
    Market *market.Service
}

// NewSellerHandler constructs a SellerHandler and panics on a nil service.
func NewSellerHandler(svc *market.Service) *SellerHandler {
    if svc == nil {
        panic("nil service passed to NewSellerHandler")
    }
    return &SellerHandler{Market: svc}
}

// SubmitSlot handles POST /v1/slots.  The request body must contain
// pc_name, hours and price; hours and price must fall inside the
// configured bounds.  On success the pending slot is returned with a
// 201 status.  Validation failures return 400 with the reason.
func (h *SellerHandler) SubmitSlot(c echo.Context) error {
    var body struct {
        PCName string `json:"pc_name"`
        Hours  uint32 `json:"hours"`
        Price  uint32 `json:"price"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    seller := currentName(c)
    slot, err := h.Market.SubmitSlot(c.Request().Context(), seller, body.PCName, body.Hours, body.Price)
    if err != nil {
        return writeMarketError(c, err)
    }
    return c.JSON(http.StatusCreated, echo.Map{"slot": slot})
}
