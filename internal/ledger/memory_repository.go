package ledger

import (
	"sort"
	"sync"

	"startive/internal/models"
)

// MemoryRepository is an in-memory Repository, used in tests and anywhere
// a database is overkill. Safe for concurrent use.
type MemoryRepository struct {
	mu           sync.Mutex
	savings      []models.SavingsEntry
	transactions []models.Transaction
	goals        []models.Goal
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (m *MemoryRepository) AddSavings(entries ...models.SavingsEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.savings = append(m.savings, entries...)
}

func (m *MemoryRepository) AddTransactions(transactions ...models.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = append(m.transactions, transactions...)
}

func (m *MemoryRepository) AddGoals(goals ...models.Goal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.goals = append(m.goals, goals...)
}

func (m *MemoryRepository) SavingsByUser(userID uint) ([]models.SavingsEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.SavingsEntry
	for _, e := range m.savings {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.Before(out[j].OccurredAt)
	})
	return out, nil
}

func (m *MemoryRepository) TransactionsByUser(userID uint, limit int) ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Transaction
	for _, t := range m.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryRepository) GoalsByUser(userID uint) ([]models.Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Goal
	for _, g := range m.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}
