package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/auth"
	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/util"

	"github.com/gin-gonic/gin"
)

// RequirePermissions gates a route behind the given permission codes.
// Must run after SessionAuth; a request with no resolved user is treated
// as unauthenticated, never as forbidden.
func RequirePermissions(codes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortUnauthenticated(c)
			return
		}

		decision := auth.Authorize(user, codes...)
		if !decision.Allowed() {
			msg := fmt.Sprintf("Missing permissions: %s", strings.Join(decision.Missing, ", "))
			util.Error(c, http.StatusForbidden, util.CodeForbidden, msg)
			c.Abort()
			return
		}

		c.Next()
	}
}
