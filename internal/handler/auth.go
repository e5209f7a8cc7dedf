package handler

import (
    "net/http" // HTTP status codes
    "strings"  // normalizing the requested role
    "time"     // formatting the token expiry

    "github.com/iliyamo/pc-capacity-market/internal/utils" // token builder
    "github.com/labstack/echo/v4"                          // Echo web framework
)

// AuthHandler implements the role selector.  A client picks a display
// name and one of the three marketplace roles and receives a signed
// access token carrying both.  Nothing is verified beyond the role
// being known: authentication past the role selector is explicitly out
// of scope for this prototype.
type AuthHandler struct {
    JWTSecret    string // secret used to sign issued tokens
    AccessTTLMin int    // token lifetime in minutes
}

// NewAuthHandler constructs an AuthHandler with the signing secret and
// access token TTL from configuration.
func NewAuthHandler(secret string, ttlMin int) *AuthHandler {
    return &AuthHandler{JWTSecret: secret, AccessTTLMin: ttlMin}
}

// SelectRole handles POST /v1/auth/role.  The request body must contain
// a JSON object with "name" and "role" fields; role must be one of
// ADMIN, SELLER or BUYER (case-insensitive).  On success it returns a
// 200 response with the signed token, its expiry and the normalized
// role.
func (a *AuthHandler) SelectRole(c echo.Context) error {
    var body struct {
        Name string `json:"name"`
        Role string `json:"role"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    name := strings.TrimSpace(body.Name)
    if name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
    }
    role := strings.ToUpper(strings.TrimSpace(body.Role))
    switch role {
    case RoleAdmin, RoleSeller, RoleBuyer:
    default:
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "role must be one of ADMIN, SELLER, BUYER"})
    }
    tok, err := utils.NewAccessToken(a.JWTSecret, name, role, a.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue token"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "access_token": tok.Token,
        "expires_at":   tok.Exp.Format(time.RFC3339),
        "role":         role,
        "name":         name,
    })
}
