package middlewares

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Auth validates the bearer tokens the host platform attaches to provider
// calls. Tokens are HMAC-signed JWTs; the shared secret is read from
// secretFile once at startup.
func Auth(secretFile string) (gin.HandlerFunc, error) {
	secret, err := os.ReadFile(secretFile)
	if err != nil {
		return nil, err
	}
	key := []byte(strings.TrimSpace(string(secret)))
	log := zap.S().Named("auth")

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		_, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
		if err != nil {
			log.Debugw("rejected token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Next()
	}, nil
}
