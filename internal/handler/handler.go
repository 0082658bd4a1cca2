package handler

import (
	"startive/internal/models"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the user placed into the context by AuthMiddleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
