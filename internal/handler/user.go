package handler

import (
	"net/http"

	"startive/internal/util"

	"github.com/gin-gonic/gin"
)

// GetMe returns the current logged-in user (requires AuthMiddleware).
func GetMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":                user.ID,
			"username":          user.Username,
			"email":             user.Email,
			"risk_preference":   user.RiskPreference,
			"subscription_tier": user.SubscriptionTier,
			"created_at":        user.CreatedAt,
		},
	})
}
