package router // package router defines how HTTP routes are registered for the API

import (
	"database/sql"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/evelark/postboard/internal/config"
	"github.com/evelark/postboard/internal/handler"    // import the handlers that implement business logic
	"github.com/evelark/postboard/internal/middleware" // import middleware for session authentication
	"github.com/evelark/postboard/internal/session"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAPI registers the JSON API and applies the session gate to the
// protected endpoints.  Login, account creation and sign-out are reachable
// without a session; the session check and post creation are not.
func RegisterAPI(e *echo.Echo, a *handler.AuthHandler, p *handler.PostHandler, store session.Store, db *sql.DB) {
	g := e.Group("/api")
	// Open endpoints.  Sign-out is deliberately ungated: destroying a
	// session that does not exist is still a successful sign-out.
	g.POST("/login", a.Login)
	g.POST("/create", a.CreateAccount)
	g.POST("/signout", a.Signout)
	g.GET("/test-db", handler.TestDB(db))

	// Gated endpoints.  RequireSession resolves the cookie against the
	// session store and injects the username and user ID before the
	// handler runs; unauthenticated requests stop at the gate with 401.
	auth := e.Group("/api", middleware.RequireSession(store))
	auth.GET("/check-session", a.CheckSession)
	auth.POST("/create-post", p.CreatePost)
}

// RegisterPages serves the built frontend.  The dashboard page sits behind
// the same session gate as the API; every unknown path falls through to the
// 404 page.
func RegisterPages(e *echo.Echo, cfg config.Config, store session.Store) {
	dir := cfg.StaticDir
	e.Static("/assets", filepath.Join(dir, "assets"))

	index := func(c echo.Context) error {
		return c.File(filepath.Join(dir, "index.html"))
	}
	e.GET("/", index)
	e.GET("/index.html", index)

	e.GET("/dashboard.html", func(c echo.Context) error {
		return c.File(filepath.Join(dir, "dashboard.html"))
	}, middleware.RequireSession(store))

	// Unknown paths get the 404 page with a 404 status.  c.File always
	// answers 200, so the page is read and sent explicitly.
	e.RouteNotFound("/*", func(c echo.Context) error {
		b, err := os.ReadFile(filepath.Join(dir, "404.html"))
		if err != nil {
			return echo.ErrNotFound
		}
		return c.HTMLBlob(http.StatusNotFound, b)
	})
}
