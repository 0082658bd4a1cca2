package handler

import (
	"net/http"

	"startive/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UpdateRiskReq updates the allocation risk preference.
type UpdateRiskReq struct {
	RiskPreference string `json:"risk_preference" binding:"required,oneof=conservative moderate aggressive"`
}

// UpdateSubscriptionReq switches the subscription tier.
type UpdateSubscriptionReq struct {
	Tier string `json:"tier" binding:"required,oneof=basic elite"`
}

// ChangePasswordReq changes the account password.
type ChangePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=64"`
}

// UpdateRiskPreference updates the tier used by the allocation sampler.
func UpdateRiskPreference(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
			return
		}

		var req UpdateRiskReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid risk preference")
			return
		}

		if err := db.Model(user).Update("risk_preference", req.RiskPreference).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update")
			return
		}
		user.RiskPreference = req.RiskPreference

		util.Success(c, util.Response{
			"message":         "risk profile updated",
			"risk_preference": user.RiskPreference,
		})
	}
}

// UpdateSubscription switches between the basic and elite plans.
func UpdateSubscription(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
			return
		}

		var req UpdateSubscriptionReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid subscription tier")
			return
		}

		if err := db.Model(user).Update("subscription_tier", req.Tier).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update")
			return
		}
		user.SubscriptionTier = req.Tier

		util.Success(c, util.Response{
			"message":           "subscription updated",
			"subscription_tier": user.SubscriptionTier,
		})
	}
}

// ChangePassword changes the current user's password.
func ChangePassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
			return
		}

		var req ChangePasswordReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "old password is incorrect")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to hash password")
			return
		}

		if err := db.Model(user).Update("password_hash", string(hash)).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update password")
			return
		}

		util.Success(c, util.Response{
			"message": "password changed, please log in again",
		})
	}
}
