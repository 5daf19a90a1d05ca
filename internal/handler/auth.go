package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/auth"
	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/config"
	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/middleware"
	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/models"
	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/store"
	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler serves login, logout and the current-user query.
type AuthHandler struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewAuthHandler(s *store.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Store: s, Cfg: cfg}
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates the credentials, creates a session and binds it to
// the client via the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "email and password are required")
		return
	}

	email, err := util.NormalizeEmail(req.Email)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid email")
		return
	}

	user, err := auth.Authenticate(h.Store, email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrAuthenticationFailed) {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Invalid email or password")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "login failed")
		}
		return
	}

	session, err := h.Store.CreateSession(user.ID, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create session failed")
		return
	}

	h.setSessionCookie(c, session.ID)
	util.Success(c, userPayload(user))
}

// Logout revokes the referenced session best-effort and always clears the
// cookie. A malformed cookie or a store failure during revoke must not
// keep the client logged in browser-side, so both are swallowed.
func (h *AuthHandler) Logout(c *gin.Context) {
	if raw, err := c.Cookie(h.Cfg.Cookie.Name); err == nil && raw != "" {
		if sessionID, err := uuid.Parse(raw); err == nil {
			if err := h.Store.RevokeSession(sessionID.String()); err != nil {
				log.Printf("logout: revoke session: %v", err)
			}
		}
	}

	h.clearSessionCookie(c)
	util.Success(c, util.Response{"message": "Logged out"})
}

// Me returns the current user with roles and effective permissions.
// Requires the session middleware.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Not authenticated")
		return
	}
	util.Success(c, userPayload(user))
}

func userPayload(user *models.User) util.Response {
	return util.Response{
		"user":        user,
		"roles":       user.Roles,
		"permissions": user.EffectivePermissions(),
	}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, sessionID string) {
	maxAge := h.Cfg.Session.TTLMinutes * 60
	c.SetSameSite(h.Cfg.SameSiteMode())
	c.SetCookie(
		h.Cfg.Cookie.Name,
		sessionID,
		maxAge,
		h.Cfg.Cookie.Path,
		h.Cfg.Cookie.Domain,
		h.Cfg.Cookie.Secure,
		true, // HttpOnly
	)
}

// clearSessionCookie must use the same path/domain/flags as
// setSessionCookie: browsers silently ignore a deletion whose attributes
// do not match the original cookie.
func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(h.Cfg.SameSiteMode())
	c.SetCookie(
		h.Cfg.Cookie.Name,
		"",
		-1,
		h.Cfg.Cookie.Path,
		h.Cfg.Cookie.Domain,
		h.Cfg.Cookie.Secure,
		true,
	)
}
