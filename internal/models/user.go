package models

import "time"

// Risk preference tiers controlling how round-ups are allocated.
const (
	RiskConservative = "conservative"
	RiskModerate     = "moderate"
	RiskAggressive   = "aggressive"
)

// Subscription tiers.
const (
	TierBasic = "basic"
	TierElite = "elite"
)

// User represents application user.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:64;uniqueIndex;not null"`
	Email        string `gorm:"size:128;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`

	RiskPreference   string `gorm:"size:16;not null;default:moderate"`
	SubscriptionTier string `gorm:"size:16;not null;default:basic"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
