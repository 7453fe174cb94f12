package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/evelark/postboard/internal/session"
)

// CookieName is the cookie carrying the opaque session ID.
const CookieName = "session_id"

// Context keys under which RequireSession stores the resolved identity.
// Handlers read them back via c.Get().
const (
    ContextUsername = "username"
    ContextUserID   = "user_id"
)

// RequireSession returns an Echo middleware that resolves the session cookie
// against the store and injects the owner's identity into the request
// context. Every request starts unauthenticated: the state is rebuilt from
// the store each time, never cached in-process, so multiple server
// instances stay consistent. A missing cookie, an unknown or expired
// session, or an empty payload all produce the same 401 body; the handler
// chain is not invoked in that case.
func RequireSession(store session.Store) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            cookie, err := c.Cookie(CookieName)
            if err != nil || cookie.Value == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Not authenticated", "authenticated": false})
            }
            // The gate decision waits on the store; no request proceeds
            // past this point until the lookup answers.
            p, ok, err := store.Get(c.Request().Context(), cookie.Value)
            if err != nil {
                return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Session lookup failed"})
            }
            if !ok {
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Not authenticated", "authenticated": false})
            }
            c.Set(ContextUsername, p.Username)
            c.Set(ContextUserID, p.UserID)
            return next(c)
        }
    }
}
