package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/wasul/internal/server/http/dto"
)

const adminRealm = `Basic realm="wasul admin"`

// AdminVerifier checks operator credentials.
type AdminVerifier interface {
	AdminEnabled() bool
	VerifyAdmin(user, password string) bool
}

// AdminRequired guards operator routes with HTTP basic auth when a password is configured.
func AdminRequired(verifier AdminVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !verifier.AdminEnabled() {
			c.Next()
			return
		}
		user, password, ok := c.Request.BasicAuth()
		if !ok || !verifier.VerifyAdmin(user, password) {
			c.Header("WWW-Authenticate", adminRealm)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: "Admin credentials required"})
			return
		}
		c.Next()
	}
}
