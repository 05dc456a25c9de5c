package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework handles routing

	"github.com/iliyamo/marina-berth-reservation/internal/handler"
	"github.com/iliyamo/marina-berth-reservation/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring systems use this endpoint to verify
	// that the service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the public account endpoints: login and signup.
// Signup is intentionally unauthenticated so the first account can be
// created on a fresh deployment.  The rate limiter is applied directly
// here; no caller identity exists yet, so these routes throttle by IP.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, u *handler.UserHandler, limit echo.MiddlewareFunc) {
	e.POST("/login", a.Login, limit)
	e.POST("/users", u.Create, limit)
}

// RegisterAPI registers every protected endpoint behind the JWT
// middleware.  All groups share one middleware chain so the 401/403
// contract is identical across resources.  The limiter sits behind
// JWTAuth so its user-keyed strategies see the authenticated username;
// the cache runs last and only on the resource groups whose reads are
// worth caching.
func RegisterAPI(e *echo.Echo, jwtSecret string, u *handler.UserHandler, cw *handler.CatwayHandler, r *handler.ReservationHandler, limit, cache echo.MiddlewareFunc) {
	auth := middleware.JWTAuth(jwtSecret)

	users := e.Group("/users", auth, limit)
	users.GET("", u.List)
	users.GET("/:username", u.Get)
	users.DELETE("/:username", u.Delete)

	catways := e.Group("/catways", auth, limit, cache)
	catways.GET("", cw.List)
	catways.GET("/:catwayNumber", cw.Get)
	catways.POST("", cw.Create)
	catways.PUT("/:catwayNumber", cw.Update)
	catways.DELETE("/:catwayNumber", cw.Delete)

	reservations := e.Group("/reservations", auth, limit, cache)
	reservations.GET("", r.List)
	reservations.GET("/:catwayNumber", r.Get)
	reservations.POST("", r.Create)
	reservations.PUT("/:catwayNumber", r.Update)
	reservations.DELETE("/:catwayNumber", r.Delete)
}
