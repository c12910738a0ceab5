package middleware

import (
	"net/http"
	"strings"

	"github.com/gestorhq/gestor-be/types"
	"github.com/gestorhq/gestor-be/utils"
	"github.com/gin-gonic/gin"
)

// UserContextKey is the gin context key holding the authenticated user's claims.
const UserContextKey = "user"

func AuthMiddleware(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
			Success: false,
			Error:   "Authorization header is required",
		})
		return
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
			Success: false,
			Error:   "Authorization header format must be Bearer {token}",
		})
		return
	}

	claims, err := utils.ParseUserToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
			Success: false,
			Error:   "Invalid token",
		})
		return
	}

	c.Set(UserContextKey, claims)
	c.Next()
}
