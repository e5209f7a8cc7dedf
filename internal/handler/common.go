package handler // handler defines http handlers

import (
    "errors"   // errors provides sentinel comparisons for translation
    "net/http" // HTTP status codes

    "github.com/iliyamo/pc-capacity-market/internal/market"
    "github.com/iliyamo/pc-capacity-market/internal/repository"
    "github.com/labstack/echo/v4"
)

// Marketplace roles carried in the JWT "role" claim.  There is no user
// table behind them: the role selector is the only access control.
const (
    RoleAdmin  = "ADMIN"
    RoleSeller = "SELLER"
    RoleBuyer  = "BUYER"
)

// currentName extracts the display name stored by JWTAuth middleware
// under the "user_id" context key (the JWT subject).
func currentName(c echo.Context) string {
    if v := c.Get("user_id"); v != nil {
        if s, ok := v.(string); ok {
            return s
        }
    }
    return ""
}

// writeMarketError translates lifecycle errors into HTTP responses:
// validation failures become 400, missing or non-approved targets 404
// and anything else (storage failures included) a generic 500.  Storage
// errors are surfaced, never dropped, but their details stay out of the
// response body.
func writeMarketError(c echo.Context, err error) error {
    if ve, ok := market.AsValidation(err); ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Error()})
    }
    if errors.Is(err, repository.ErrSlotNotFound) {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "slot not found"})
    }
    if errors.Is(err, market.ErrSlotNotApproved) {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "slot not approved"})
    }
    if errors.Is(err, repository.ErrBookingNotFound) {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
    }
    c.Logger().Errorf("storage error: %v", err)
    return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
}
