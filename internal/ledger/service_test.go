package ledger

import (
	"testing"
	"time"

	"startive/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestTotalSavingsCent_Empty(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	total, err := svc.TotalSavingsCent(1)
	if err != nil {
		t.Fatalf("TotalSavingsCent error: %v", err)
	}
	if total != 0 {
		t.Errorf("TotalSavingsCent = %d, want 0 for user with no entries", total)
	}
}

func TestTotalSavingsCent(t *testing.T) {
	repo := NewMemoryRepository()
	repo.AddSavings(
		models.SavingsEntry{UserID: 1, AmountCent: 65, OccurredAt: day("2026-01-02")},
		models.SavingsEntry{UserID: 1, AmountCent: 35, OccurredAt: day("2026-01-03")},
		models.SavingsEntry{UserID: 2, AmountCent: 999, OccurredAt: day("2026-01-03")},
	)
	svc := NewService(repo)

	total, err := svc.TotalSavingsCent(1)
	if err != nil {
		t.Fatalf("TotalSavingsCent error: %v", err)
	}
	if total != 100 {
		t.Errorf("TotalSavingsCent = %d, want 100", total)
	}
}

func TestSavingsByDate(t *testing.T) {
	repo := NewMemoryRepository()
	repo.AddSavings(
		models.SavingsEntry{UserID: 1, AmountCent: 50, OccurredAt: day("2026-01-03")},
		models.SavingsEntry{UserID: 1, AmountCent: 30, OccurredAt: day("2026-01-01")},
		models.SavingsEntry{UserID: 1, AmountCent: 20, OccurredAt: day("2026-01-01")},
	)
	svc := NewService(repo)

	series, err := svc.SavingsByDate(1)
	if err != nil {
		t.Fatalf("SavingsByDate error: %v", err)
	}

	want := []DailySavings{
		{Date: "2026-01-01", TotalCent: 50, CumulativeCent: 50},
		{Date: "2026-01-03", TotalCent: 50, CumulativeCent: 100},
	}
	if len(series) != len(want) {
		t.Fatalf("SavingsByDate returned %d points, want %d", len(series), len(want))
	}
	for i := range want {
		if series[i] != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, series[i], want[i])
		}
	}
}

func TestAllocationBreakdown(t *testing.T) {
	repo := NewMemoryRepository()
	repo.AddSavings(
		models.SavingsEntry{UserID: 1, AmountCent: 60, AllocationType: "ETF", OccurredAt: day("2026-01-01")},
		models.SavingsEntry{UserID: 1, AmountCent: 40, AllocationType: "high-yield savings", OccurredAt: day("2026-01-02")},
		models.SavingsEntry{UserID: 1, AmountCent: 15, AllocationType: "ETF", OccurredAt: day("2026-01-03")},
	)
	svc := NewService(repo)

	breakdown, err := svc.AllocationBreakdown(1)
	if err != nil {
		t.Fatalf("AllocationBreakdown error: %v", err)
	}
	if breakdown["ETF"] != 75 {
		t.Errorf("ETF total = %d, want 75", breakdown["ETF"])
	}
	if breakdown["high-yield savings"] != 40 {
		t.Errorf("high-yield savings total = %d, want 40", breakdown["high-yield savings"])
	}
	if len(breakdown) != 2 {
		t.Errorf("breakdown has %d buckets, want 2", len(breakdown))
	}
}

func TestProgress(t *testing.T) {
	testCases := []struct {
		currentCent int64
		targetCent  int64
		want        float64
	}{
		{0, 10000, 0},
		{2500, 10000, 25},
		{10000, 10000, 100},
		{15000, 10000, 150},
		{500, 0, 0},  // guard: non-positive target
		{500, -1, 0}, // guard: non-positive target
	}

	for _, tc := range testCases {
		if got := Progress(tc.currentCent, tc.targetCent); got != tc.want {
			t.Errorf("Progress(%d, %d) = %v, want %v", tc.currentCent, tc.targetCent, got, tc.want)
		}
	}
}

// Progress must never decrease as funding approaches the target.
func TestProgress_Monotonic(t *testing.T) {
	const target = 12345
	prev := Progress(0, target)
	for current := int64(1); current <= target; current += 123 {
		got := Progress(current, target)
		if got < prev {
			t.Fatalf("Progress(%d, %d) = %v, below previous %v", current, target, got, prev)
		}
		prev = got
	}
}

func TestGoalProgressByUser(t *testing.T) {
	repo := NewMemoryRepository()
	repo.AddGoals(
		models.Goal{ID: 1, UserID: 1, Name: "Vacation", TargetCent: 100000, CurrentCent: 10000},
		models.Goal{ID: 2, UserID: 1, Name: "Laptop", TargetCent: 50000, CurrentCent: 40000},
	)
	svc := NewService(repo)

	goals, err := svc.GoalProgressByUser(1)
	if err != nil {
		t.Fatalf("GoalProgressByUser error: %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("got %d goals, want 2", len(goals))
	}
	if goals[0].Progress != 10 {
		t.Errorf("Vacation progress = %v, want 10", goals[0].Progress)
	}
	if goals[1].Progress != 80 {
		t.Errorf("Laptop progress = %v, want 80", goals[1].Progress)
	}
}

func TestRecentTransactions(t *testing.T) {
	repo := NewMemoryRepository()
	repo.AddTransactions(
		models.Transaction{ID: 1, UserID: 1, AmountCent: 100, Category: "Dining", OccurredAt: day("2026-01-01")},
		models.Transaction{ID: 2, UserID: 1, AmountCent: 200, Category: "Groceries", OccurredAt: day("2026-01-05")},
		models.Transaction{ID: 3, UserID: 1, AmountCent: 300, Category: "Rent", OccurredAt: day("2026-01-03")},
	)
	svc := NewService(repo)

	recent, err := svc.RecentTransactions(1, 2)
	if err != nil {
		t.Fatalf("RecentTransactions error: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d transactions, want 2", len(recent))
	}
	if recent[0].ID != 2 || recent[1].ID != 3 {
		t.Errorf("got order [%d %d], want [2 3] (newest first)", recent[0].ID, recent[1].ID)
	}
}
