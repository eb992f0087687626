package middleware

import (
	"net/http"
	"strings"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/logger"
	"jobportal_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const userIDContextKey = "userID"

// AuthMiddleware rejects requests without a valid bearer token and stores
// the token's user id in the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: apperrors.NewUnauthorizedError("Authorization header missing or invalid"),
			})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: apperrors.ErrInvalidToken,
			})
			return
		}

		c.Set(userIDContextKey, claims.UserID)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// GetUserID extracts the authenticated user id from the gin context.
func GetUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get(userIDContextKey)
	if !exists {
		return 0, false
	}

	userID, ok := val.(uint)
	if !ok {
		return 0, false
	}
	return userID, true
}
