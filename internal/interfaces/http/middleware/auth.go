package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/trackcase/backend/internal/domain/shared"
	"github.com/trackcase/backend/internal/infrastructure/auth"
	"github.com/trackcase/backend/internal/interfaces/http/dto"
)

const userNameKey = "user_name"

// Auth verifies the bearer token and stores the caller's user name for the
// audit recorder. Requests without a valid token are rejected.
func Auth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			message := "invalid token"
			if de, ok := err.(*shared.DomainError); ok {
				message = de.Message
			}
			abortUnauthorized(c, message)
			return
		}

		c.Set(userNameKey, claims.UserName)
		c.Next()
	}
}

// GetUserName returns the authenticated user's name from gin context, or ""
func GetUserName(c *gin.Context) string {
	return c.GetString(userNameKey)
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(shared.CodeUnauthorized, message, GetRequestID(c)))
}
