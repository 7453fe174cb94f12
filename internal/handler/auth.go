package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/evelark/postboard/internal/config"
	"github.com/evelark/postboard/internal/middleware"
	"github.com/evelark/postboard/internal/model"
	"github.com/evelark/postboard/internal/repository"
	"github.com/evelark/postboard/internal/session"
	"github.com/evelark/postboard/internal/utils"
)

// UserStore is the slice of the user repository the auth endpoints need.
type UserStore interface {
	Create(ctx context.Context, u model.User) (uint64, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
}

// AuthHandler bundles dependencies for account and session endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Users    UserStore
	Sessions session.Store
}

func NewAuthHandler(cfg config.Config, u UserStore, s session.Store) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Sessions: s}
}

// ----- DTOs -----

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
type createReq struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// CheckSession reports the identity resolved by RequireSession. It only
// ever runs for authenticated requests; the middleware answers 401 itself.
func (h *AuthHandler) CheckSession(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message":       "Session is valid",
		"authenticated": true,
		"username":      c.Get(middleware.ContextUsername),
		"ID":            c.Get(middleware.ContextUserID),
	})
}

// Login verifies credentials and issues a fresh session. Unknown usernames
// and wrong passwords produce byte-identical 401 responses so the endpoint
// cannot be used to enumerate accounts. A login under an existing cookie
// simply issues a new session; the old one ages out on its own TTL.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Username and password are required"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Username and password are required"})
	}

	// Detached like the other write paths: a disconnect mid-login must not
	// abort the session write once credentials check out.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid username or password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during login"})
	}
	ok, err := utils.VerifyPassword(u.PasswordHash, req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during login"})
	}
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid username or password"})
	}

	id, err := h.Sessions.Create(ctx, session.Payload{Username: u.Username, UserID: u.ID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during login"})
	}
	h.setSessionCookie(c, id)
	return c.JSON(http.StatusOK, echo.Map{"message": "Login successful", "redirect": "/dashboard.html"})
}

// CreateAccount registers a new user. Field presence is checked here;
// uniqueness is left to the store so two concurrent registrations of the
// same name cannot both slip through.
func (h *AuthHandler) CreateAccount(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All fields are required"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All fields are required"})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during user creation"})
	}

	// The insert runs to completion even if the client disconnects; an
	// aborted half-registration would strand the username.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), 5*time.Second)
	defer cancel()

	_, err = h.Users.Create(ctx, model.User{
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		switch err {
		case repository.ErrUsernameExists:
			return c.JSON(http.StatusConflict, echo.Map{"message": "Username already exists"})
		case repository.ErrEmailExists:
			return c.JSON(http.StatusConflict, echo.Map{"message": "Email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during user creation"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "User created successfully"})
}

// Signout destroys the current session, if any, and clears the cookie.
// Calling it without a session is still a success: the end state (signed
// out) holds either way.
func (h *AuthHandler) Signout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.CookieName); err == nil && cookie.Value != "" {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), 5*time.Second)
		defer cancel()
		if err := h.Sessions.Destroy(ctx, cookie.Value); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error signing out"})
		}
	}
	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, echo.Map{"message": "Signed out successfully", "redirect": "/index.html"})
}

// setSessionCookie attaches the session ID to the response. Cross-origin
// deployments need Secure + SameSite=None for the browser to send the
// cookie at all; local development over plain HTTP relaxes both.
func (h *AuthHandler) setSessionCookie(c echo.Context, id string) {
	ck := &http.Cookie{
		Name:     middleware.CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   h.Cfg.SessionTTLMin * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if h.Cfg.Env == "prod" {
		ck.Secure = true
		ck.SameSite = http.SameSiteNoneMode
	}
	c.SetCookie(ck)
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	ck := &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if h.Cfg.Env == "prod" {
		ck.Secure = true
		ck.SameSite = http.SameSiteNoneMode
	}
	c.SetCookie(ck)
}
