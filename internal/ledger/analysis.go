package ledger

import "sort"

// Spending clusters by amount percentile.
const (
	ClusterLow    = "low"
	ClusterMedium = "medium"
	ClusterHigh   = "high"
)

// SpendingAnalysis summarizes a user's transactions: overall totals plus
// a coarse low/medium/high clustering of transaction amounts by
// percentile rank.
type SpendingAnalysis struct {
	TotalCent       int64          `json:"total_cent"`
	AverageCent     int64          `json:"average_cent"`
	HighestCategory string         `json:"highest_category"`
	ClusterCounts   map[string]int `json:"cluster_counts"`
}

// AnalyzeSpending computes the spending summary over all of the user's
// transactions. Returns nil when there are none.
func (s *Service) AnalyzeSpending(userID uint) (*SpendingAnalysis, error) {
	transactions, err := s.repo.TransactionsByUser(userID, 0)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, nil
	}

	var total int64
	byCategory := make(map[string]int64)
	amounts := make([]int64, 0, len(transactions))
	for _, t := range transactions {
		total += t.AmountCent
		byCategory[t.Category] += t.AmountCent
		amounts = append(amounts, t.AmountCent)
	}

	highest := ""
	var highestTotal int64
	for category, sum := range byCategory {
		if highest == "" || sum > highestTotal || (sum == highestTotal && category < highest) {
			highest = category
			highestTotal = sum
		}
	}

	sort.Slice(amounts, func(i, j int) bool { return amounts[i] < amounts[j] })

	counts := map[string]int{ClusterLow: 0, ClusterMedium: 0, ClusterHigh: 0}
	for _, t := range transactions {
		counts[clusterFor(amountPercentile(amounts, t.AmountCent))]++
	}

	return &SpendingAnalysis{
		TotalCent:       total,
		AverageCent:     total / int64(len(transactions)),
		HighestCategory: highest,
		ClusterCounts:   counts,
	}, nil
}

// amountPercentile ranks an amount within the sorted slice using the
// average rank of ties, scaled to (0, 1].
func amountPercentile(sorted []int64, amount int64) float64 {
	// first index >= amount and first index > amount
	lo := sort.Search(len(sorted), func(i int) bool { return sorted[i] >= amount })
	hi := sort.Search(len(sorted), func(i int) bool { return sorted[i] > amount })

	// ranks are 1-based; ties share their average rank
	avgRank := float64(lo+1+hi) / 2
	return avgRank / float64(len(sorted))
}

func clusterFor(percentile float64) string {
	switch {
	case percentile < 0.33:
		return ClusterLow
	case percentile < 0.67:
		return ClusterMedium
	default:
		return ClusterHigh
	}
}
