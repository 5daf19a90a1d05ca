package middleware

import (
	"net/http"

	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/models"
	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/store"
	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextUserKey is where the resolved user is stored in the gin context.
const ContextUserKey = "currentUser"

const unauthenticatedMsg = "Not authenticated"

// SessionAuth resolves the session cookie into the current user and puts
// it in the context. Every failure — missing cookie, malformed id,
// unknown/expired/revoked session, missing or inactive user — yields the
// same 401. A cookie is hostile input: a malformed value must never
// surface as a server error.
func SessionAuth(s *store.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(cookieName)
		if err != nil || raw == "" {
			abortUnauthenticated(c)
			return
		}

		sessionID, err := uuid.Parse(raw)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		session, err := s.GetValidSession(sessionID.String())
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "session lookup failed")
			c.Abort()
			return
		}
		if session == nil {
			abortUnauthenticated(c)
			return
		}

		user, err := s.GetUserWithAccess(session.UserID)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "user lookup failed")
			c.Abort()
			return
		}
		if user == nil || !user.IsActive {
			abortUnauthenticated(c)
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser retrieves the user placed in the context by SessionAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

func abortUnauthenticated(c *gin.Context) {
	util.Error(c, http.StatusUnauthorized, util.CodeAuth, unauthenticatedMsg)
	c.Abort()
}
