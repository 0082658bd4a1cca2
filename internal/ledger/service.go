package ledger

import (
	"sort"

	"startive/internal/models"
)

// Service exposes the derived reporting views. All methods recompute from
// the underlying records on every call; dataset sizes are small enough
// that no caching is needed.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// TotalSavingsCent sums all savings entries for the user. A user with no
// entries gets 0, not an error.
func (s *Service) TotalSavingsCent(userID uint) (int64, error) {
	entries, err := s.repo.SavingsByUser(userID)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, e := range entries {
		total += e.AmountCent
	}
	return total, nil
}

// DailySavings is one point of the savings time series.
type DailySavings struct {
	Date           string `json:"date"` // YYYY-MM-DD
	TotalCent      int64  `json:"total_cent"`
	CumulativeCent int64  `json:"cumulative_cent"`
}

// SavingsByDate groups savings by calendar date, ascending, with a
// running cumulative sum for growth charts.
func (s *Service) SavingsByDate(userID uint) ([]DailySavings, error) {
	entries, err := s.repo.SavingsByUser(userID)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]int64)
	for _, e := range entries {
		byDate[e.OccurredAt.Format("2006-01-02")] += e.AmountCent
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]DailySavings, 0, len(dates))
	var cumulative int64
	for _, d := range dates {
		cumulative += byDate[d]
		out = append(out, DailySavings{
			Date:           d,
			TotalCent:      byDate[d],
			CumulativeCent: cumulative,
		})
	}
	return out, nil
}

// AllocationBreakdown sums savings per investment bucket.
func (s *Service) AllocationBreakdown(userID uint) (map[string]int64, error) {
	entries, err := s.repo.SavingsByUser(userID)
	if err != nil {
		return nil, err
	}

	breakdown := make(map[string]int64)
	for _, e := range entries {
		breakdown[e.AllocationType] += e.AmountCent
	}
	return breakdown, nil
}

// GoalProgress is a goal with its funded percentage attached.
type GoalProgress struct {
	models.Goal
	Progress float64 `json:"progress"`
}

// Progress returns the funded percentage of a goal. Non-positive targets
// yield 0 rather than dividing by zero.
func Progress(currentCent, targetCent int64) float64 {
	if targetCent <= 0 {
		return 0
	}
	return float64(currentCent) / float64(targetCent) * 100
}

// GoalProgressByUser returns the user's goals, in creation order, with
// progress computed for each.
func (s *Service) GoalProgressByUser(userID uint) ([]GoalProgress, error) {
	goals, err := s.repo.GoalsByUser(userID)
	if err != nil {
		return nil, err
	}

	out := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		out = append(out, GoalProgress{
			Goal:     g,
			Progress: Progress(g.CurrentCent, g.TargetCent),
		})
	}
	return out, nil
}

// RecentTransactions returns the user's most recent transactions,
// newest first.
func (s *Service) RecentTransactions(userID uint, limit int) ([]models.Transaction, error) {
	return s.repo.TransactionsByUser(userID, limit)
}
