// Package ledger derives reporting views (savings totals, time series,
// allocation breakdowns, goal progress) from persisted records. It only
// depends on the Repository contract, not on a concrete storage engine.
package ledger

import "startive/internal/models"

// Repository is the read-side storage contract the aggregator needs.
type Repository interface {
	// SavingsByUser returns all savings entries for the user, ordered by
	// occurrence time ascending.
	SavingsByUser(userID uint) ([]models.SavingsEntry, error)

	// TransactionsByUser returns the user's transactions ordered by
	// occurrence time descending. A limit <= 0 means no limit.
	TransactionsByUser(userID uint, limit int) ([]models.Transaction, error)

	// GoalsByUser returns the user's goals in creation order.
	GoalsByUser(userID uint) ([]models.Goal, error)
}
