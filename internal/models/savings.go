package models

import "time"

// SavingsEntrySourceRoundup marks entries produced by the round-up pipeline.
// Every entry with this source maps 1:1 to the transaction whose round-up
// funded it, with the same amount and timestamp.
const SavingsEntrySourceRoundup = "roundup"

// SavingsEntry represents money swept into a synthetic investment bucket.
type SavingsEntry struct {
	ID             uint      `gorm:"primaryKey"`
	UserID         uint      `gorm:"index;not null"`
	AmountCent     int64     `gorm:"not null"`
	Source         string    `gorm:"size:16;not null;default:roundup"`
	AllocationType string    `gorm:"size:32;index;not null"` // high-yield savings / ETF / crypto
	OccurredAt     time.Time `gorm:"index;not null"`
	CreatedAt      time.Time
}
