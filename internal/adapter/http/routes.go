package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the gateway's endpoints on the Echo instance.
// The health check lives at root level for load balancers; everything else
// is versioned under /api/v1.
func RegisterRoutes(e *echo.Echo, h *GatewayHandler) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1")
	api.POST("/auth/signup", h.Signup)
	api.POST("/auth/signin", h.Signin)
	api.POST("/flights/search", h.SearchFlights)
	api.POST("/flights/:id/select", h.SelectFlight)
	api.GET("/bookings/checkout/:flightId", h.Checkout)
	api.POST("/bookings", h.BookFlight)
	api.GET("/bookings/confirmation/:id", h.Confirmation)
	api.GET("/bookings/:id", h.LookupBooking)
	api.DELETE("/bookings/:id", h.CancelBooking)
	api.DELETE("/session", h.ResetSession)
}
