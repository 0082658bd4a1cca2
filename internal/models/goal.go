package models

import "time"

// Goal represents a savings goal.
// CurrentCent is only ever changed by explicit funding; the round-up
// pipeline never touches it.
type Goal struct {
	ID          uint       `gorm:"primaryKey"`
	UserID      uint       `gorm:"index;not null"`
	Name        string     `gorm:"size:64;not null"`
	TargetCent  int64      `gorm:"not null"`
	CurrentCent int64      `gorm:"not null;default:0"`
	Deadline    *time.Time `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
