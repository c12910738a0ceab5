package handler

import (
	"github.com/gestorhq/gestor-be/middleware"
	"github.com/gestorhq/gestor-be/utils"
	"github.com/gin-gonic/gin"
)

// userIDFromContext returns the authenticated user's id, or "" when the
// route runs without the auth middleware.
func userIDFromContext(c *gin.Context) string {
	v, ok := c.Get(middleware.UserContextKey)
	if !ok {
		return ""
	}
	claims, ok := v.(*utils.UserClaims)
	if !ok {
		return ""
	}
	return claims.ID
}
