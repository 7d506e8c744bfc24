package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/security"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/api/dto"
)

// CookieConfig describes the session cookie
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// Clear expires the session cookie in the browser
func (cfg CookieConfig) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.Name, "", -1, "/", "", cfg.Secure, true)
}

// AuthHandler handles login, logout and registration
type AuthHandler struct {
	accounts usecase.AccountUseCase
	sessions security.SessionManager
	cookie   CookieConfig
	logger   coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	accounts usecase.AccountUseCase,
	sessions security.SessionManager,
	cookie CookieConfig,
	logger coreport.Logger,
) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		sessions: sessions,
		cookie:   cookie,
		logger:   logger,
	}
}

// LoginForm handles GET /login. Any current session is ended first.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	h.endSession(c)
	render(c, http.StatusOK, "login.html", "Log In", nil, gin.H{"fields": []string{"username", "password"}})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	h.endSession(c)

	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		Apologize(c, h.logger, domainerr.NewValidationError("form", domainerr.ErrMissingField))
		return
	}
	if req.Username == "" {
		Apologize(c, h.logger, domainerr.MissingField("username"))
		return
	}
	if req.Password == "" {
		Apologize(c, h.logger, domainerr.MissingField("password"))
		return
	}

	user, err := h.accounts.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		Apologize(c, h.logger, err)
		return
	}

	if err := h.startSession(c, user); err != nil {
		Apologize(c, h.logger, err)
		return
	}

	done(c, dto.UserResponse{UserID: user.ID, Username: user.Username})
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.endSession(c)
	c.Redirect(http.StatusFound, "/")
}

// RegisterForm handles GET /register
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	render(c, http.StatusOK, "register.html", "Register", nil,
		gin.H{"fields": []string{"username", "password", "confirmation"}})
}

// Register handles POST /register. The new user is logged in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		Apologize(c, h.logger, domainerr.NewValidationError("form", domainerr.ErrMissingField))
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), usecase.RegisterRequest{
		Username:     req.Username,
		Password:     req.Password,
		Confirmation: req.Confirmation,
	})
	if err != nil {
		Apologize(c, h.logger, err)
		return
	}

	h.endSession(c)
	if err := h.startSession(c, user); err != nil {
		Apologize(c, h.logger, err)
		return
	}

	done(c, dto.UserResponse{UserID: user.ID, Username: user.Username})
}

func (h *AuthHandler) startSession(c *gin.Context, user *entity.User) error {
	token, err := h.sessions.Issue(c.Request.Context(), user.ID)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, int(h.cookie.TTL.Seconds()), "/", "", h.cookie.Secure, true)

	h.logger.Info("User logged in", map[string]any{
		"user_id":    user.ID,
		"request_id": coreport.RequestIDFromContext(c.Request.Context()),
	})
	return nil
}

// endSession revokes the session behind the request cookie, if any, and clears the cookie
func (h *AuthHandler) endSession(c *gin.Context) {
	token, err := c.Cookie(h.cookie.Name)
	if err != nil || token == "" {
		return
	}

	if err := h.sessions.Revoke(c.Request.Context(), token); err != nil {
		h.logger.Warn("Failed to revoke session", map[string]any{
			"error":      err.Error(),
			"request_id": coreport.RequestIDFromContext(c.Request.Context()),
		})
	}

	h.cookie.Clear(c)
}
