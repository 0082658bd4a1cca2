package util

import (
	"fmt"
	"regexp"
	"time"
)

// maxAmountCent caps a single transaction or goal at ten million dollars.
const maxAmountCent = 10_000_000 * 100

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateAmountCent checks a money amount (must be positive, below the cap).
func ValidateAmountCent(cent int64) error {
	if cent <= 0 {
		return fmt.Errorf("amount must be positive, got %d cents", cent)
	}
	if cent >= maxAmountCent {
		return fmt.Errorf("amount too large, got %d cents", cent)
	}
	return nil
}

// ValidateEmail checks basic email shape.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is empty")
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidateDate checks YYYY-MM-DD format.
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	_, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	return nil
}

// ValidateCategory checks a spending category label.
func ValidateCategory(category string) error {
	if category == "" {
		return fmt.Errorf("category is empty")
	}
	if len(category) > 32 {
		return fmt.Errorf("category too long, max 32 characters")
	}
	return nil
}

// ValidateGoalName checks a savings goal name.
func ValidateGoalName(name string) error {
	if name == "" {
		return fmt.Errorf("goal name is empty")
	}
	if len(name) > 64 {
		return fmt.Errorf("goal name too long, max 64 characters")
	}
	return nil
}
