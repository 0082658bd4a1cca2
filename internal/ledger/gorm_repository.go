package ledger

import (
	"fmt"

	"startive/internal/models"

	"gorm.io/gorm"
)

// GormRepository implements Repository on top of the gorm-backed store.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) SavingsByUser(userID uint) ([]models.SavingsEntry, error) {
	var entries []models.SavingsEntry
	if err := r.db.
		Where("user_id = ?", userID).
		Order("occurred_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("query savings: %w", err)
	}
	return entries, nil
}

func (r *GormRepository) TransactionsByUser(userID uint, limit int) ([]models.Transaction, error) {
	q := r.db.
		Where("user_id = ?", userID).
		Order("occurred_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var transactions []models.Transaction
	if err := q.Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	return transactions, nil
}

func (r *GormRepository) GoalsByUser(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	if err := r.db.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}
	return goals, nil
}
