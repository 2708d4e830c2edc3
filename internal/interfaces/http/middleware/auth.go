package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainerrors "bookrack.backend/internal/domain/errors"
	"bookrack.backend/pkg/jwt"
	"bookrack.backend/pkg/logger"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// UsernameKey is the context key for the authenticated username
	UsernameKey = "username"
)

// AuthMiddleware gates protected routes on a valid bearer access token.
// It rejects before the handler body runs, so failed requests never touch
// storage.
func AuthMiddleware(tokens *jwt.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			abortUnauthorized(c, "authorization header is required")
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, "invalid authorization format, use: Bearer <token>")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		username, err := tokens.ValidateAccessToken(tokenString)
		if err != nil {
			logger.Debug(c.Request.Context(), "bearer token rejected",
				zap.String("path", c.Request.URL.Path), zap.Error(err))
			if err == jwt.ErrExpiredToken {
				abortUnauthorized(c, "token has expired")
				return
			}
			abortUnauthorized(c, "invalid token")
			return
		}

		c.Set(UsernameKey, username)
		c.Next()
	}
}

// GetUsername gets the authenticated username from the context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(UsernameKey)
	if !exists {
		return "", false
	}
	return username.(string), true
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    domainerrors.CodeUnauthorized,
		"message": message,
	})
}
