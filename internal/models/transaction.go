package models

import "time"

// Transaction represents a single spending record.
// Amounts are stored in cents to avoid float error, e.g. $12.40 = 1240.
type Transaction struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null"`
	AmountCent  int64     `gorm:"not null"`
	Category    string    `gorm:"size:32;not null"`
	Description string    `gorm:"size:255"`
	RoundupCent int64     `gorm:"not null;default:0"` // computed once at creation, immutable
	OccurredAt  time.Time `gorm:"index;not null"`
	CreatedAt   time.Time
}
