package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/thatboywest/elearningbackend/pkg/encryption"
	"github.com/thatboywest/elearningbackend/pkg/utils"
)

// IsAuthorized validates the Authorization bearer token and stores the
// bound user ID in the request context.
func IsAuthorized(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.ErrorResponse(c, 401, "Authorization token is empty", utils.ErrAuthorizationKeyNotFound)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header || tokenString == "" {
			utils.ErrorResponse(c, 401, "Authorization header must be a bearer token", utils.ErrAuthorizationKeyNotFound)
			c.Abort()
			return
		}

		userID, err := encryption.ParseJwtToken(jwtSecret, tokenString)
		if err != nil {
			utils.ErrorResponse(c, 401, "Unauthorized", utils.ErrUnauthorized)
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
