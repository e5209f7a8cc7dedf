package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/pc-capacity-market/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/pc-capacity-market/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// Handlers bundles every handler the router wires up.  main constructs
// them once and passes the bundle here so route registration stays in
// one place.
type Handlers struct {
	Auth    *handler.AuthHandler
	Admin   *handler.AdminHandler
	Seller  *handler.SellerHandler
	Buyer   *handler.BuyerHandler
	Session *handler.SessionHandler
	Logs    *handler.LogHandler
}

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance: the health check and the role selector.
func RegisterRoutes(e *echo.Echo, h Handlers, jwtSecret string) {
	// The health endpoint can be used by load balancers or monitoring
	// systems to verify that the service is up and running.
	e.GET("/healthz", handler.Health)

	// The role selector is the only way into the marketplace: it issues
	// a token for a chosen display name and role without any credential
	// check, which is the extent of access control in this prototype.
	e.POST("/v1/auth/role", h.Auth.SelectRole)

	// Everything below requires a token from the role selector.  Each
	// group applies the JWTAuth middleware plus a role gate matching
	// the view it implements.

	// Admin panel: review all slots, approve pending ones.
	admin := e.Group("/v1/admin")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole(handler.RoleAdmin))
	admin.GET("/slots", h.Admin.ListSlots)
	admin.POST("/slots/:id/approve", h.Admin.ApproveSlot)

	// Seller dashboard: submit a slot for approval.
	seller := e.Group("/v1/slots")
	seller.Use(middleware.JWTAuth(jwtSecret))
	sellerOnly := seller.Group("")
	sellerOnly.Use(middleware.RequireRole(handler.RoleSeller))
	sellerOnly.POST("", h.Seller.SubmitSlot)

	// Buyer dashboard: browse approved slots, book one.
	buyerOnly := seller.Group("")
	buyerOnly.Use(middleware.RequireRole(handler.RoleBuyer))
	buyerOnly.GET("", h.Buyer.ListApprovedSlots)
	buyerOnly.POST("/:id/book", h.Buyer.BookSlot)

	// Shared views: the active sessions board (which sweeps expired
	// bookings on every request) and the on-demand execution log.
	shared := e.Group("/v1")
	shared.Use(middleware.JWTAuth(jwtSecret))
	shared.Use(middleware.RequireRole(handler.RoleAdmin, handler.RoleSeller, handler.RoleBuyer))
	shared.GET("/sessions", h.Session.ListSessions)
	shared.GET("/logs", h.Logs.ViewLogs)
}
