package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Thonkla/PlaceMate/internal/auth"
	dom "github.com/Thonkla/PlaceMate/internal/domain"
	"github.com/Thonkla/PlaceMate/internal/dto"
	"github.com/Thonkla/PlaceMate/internal/logger"
	"github.com/Thonkla/PlaceMate/internal/metrics"
	"github.com/Thonkla/PlaceMate/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login, register and logout.
type AuthHandler struct {
	responder
	tokens  *auth.Tokens
	userSvc *service.UserService
	cookies CookieOptions
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(tokens *auth.Tokens, userSvc *service.UserService, cookies CookieOptions, log logger.Logger, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{responder: responder{log: log, metrics: m}, tokens: tokens, userSvc: userSvc, cookies: cookies}
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}
	user, err := h.userSvc.ValidateCredentials(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		h.fail(c, "auth_login", err, "login failed")
		return
	}
	h.startSession(c, http.StatusOK, user)
}

// Register godoc
// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Credentials"
// @Success      201   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}
	user, err := h.userSvc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
			return
		}
		h.fail(c, "auth_register", err, "registration failed")
		return
	}
	h.startSession(c, http.StatusCreated, user)
}

func (h *AuthHandler) startSession(c *gin.Context, status int, user dom.User) {
	token, expiresAt, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.fail(c, "auth_issue", err, "failed to create session")
		return
	}
	h.cookies.set(c, auth.CookieName, token, int(time.Until(expiresAt).Seconds()))
	c.JSON(status, dto.LoginResponse{
		OK:        true,
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		User:      dto.UserResponse{UserID: user.ID, Username: user.Username, Email: user.Email},
	})
}

// Logout godoc
// @Summary      Logout
// @Description  Revokes the token until it expires and clears the cookie.
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if credential := auth.CredentialFromRequest(c); credential != "" {
		if err := h.tokens.Revoke(c.Request.Context(), credential); err != nil {
			h.log.Debug("Token not revoked", "error", err)
		}
	}
	h.cookies.clear(c, auth.CookieName)
	c.Status(http.StatusNoContent)
}
