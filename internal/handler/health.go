package handler // declare the package name; contains HTTP handlers

import (
    "context"           // context bounds the database ping
    "database/sql"      // database handle for the ping endpoint
    "net/http"          // net/http provides status codes and response helpers
    "time"              // timeout for the ping

    "github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.  It returns
// a plain text "ok" message with an HTTP 200 status code.
func Health(c echo.Context) error {
    return c.String(http.StatusOK, "ok")
}

// TestDB returns a handler that pings the database.  The frontend calls it
// after deploys to confirm the server can actually reach its storage.
func TestDB(db *sql.DB) echo.HandlerFunc {
    return func(c echo.Context) error {
        ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
        defer cancel()
        if err := db.PingContext(ctx); err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database connection failed"})
        }
        return c.JSON(http.StatusOK, echo.Map{"message": "Database connection is working"})
    }
}
