package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetUserID extracts the authenticated user ID from the Gin context
func GetUserID(c *gin.Context) uint {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return 0
	}
	userID, ok := userIDVal.(uint)
	if !ok {
		return 0
	}
	return userID
}

// GetUserRole extracts the session role from the Gin context
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	return role.(string)
}

// ParseIDParam parses a numeric path parameter
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ParseIDQuery parses a numeric query parameter, returning 0 when absent
func ParseIDQuery(c *gin.Context, name string) uint {
	id, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
