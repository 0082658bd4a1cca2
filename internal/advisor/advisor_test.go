package advisor

import (
	"strings"
	"testing"
	"time"

	"startive/internal/ledger"
	"startive/internal/models"
)

func newTestAdvisor(repo *ledger.MemoryRepository) *Advisor {
	return New(ledger.NewService(repo))
}

func TestRespond_SavingsEstimate(t *testing.T) {
	repo := ledger.NewMemoryRepository()
	repo.AddSavings(models.SavingsEntry{
		UserID:     1,
		AmountCent: 20000, // $200.00 total savings
		OccurredAt: time.Now(),
	})
	a := newTestAdvisor(repo)

	got := a.Respond(Context{UserID: 1, RiskPreference: models.RiskModerate},
		"How much can I save this month?")
	if !strings.Contains(got, "$20.00") {
		t.Errorf("response %q does not contain $20.00", got)
	}
}

func TestRespond_SavingsEstimate_NoSavings(t *testing.T) {
	a := newTestAdvisor(ledger.NewMemoryRepository())

	got := a.Respond(Context{UserID: 1}, "how much could I be saving?")
	if !strings.Contains(got, "$0.00") {
		t.Errorf("response %q does not contain $0.00", got)
	}
}

func TestRespond_InvestmentAdvice(t *testing.T) {
	a := newTestAdvisor(ledger.NewMemoryRepository())

	testCases := []struct {
		risk string
		want string
	}{
		{models.RiskConservative, "conservative risk profile"},
		{models.RiskModerate, "moderate risk profile"},
		{models.RiskAggressive, "aggressive risk profile"},
		{"unknown", "Set a risk preference"},
	}

	for _, tc := range testCases {
		got := a.Respond(Context{UserID: 1, RiskPreference: tc.risk},
			"What investment strategy would you recommend?")
		if !strings.Contains(got, tc.want) {
			t.Errorf("risk %q: response %q does not contain %q", tc.risk, got, tc.want)
		}
	}
}

func TestRespond_GoalStatus_NoGoals(t *testing.T) {
	a := newTestAdvisor(ledger.NewMemoryRepository())

	got := a.Respond(Context{UserID: 1}, "How am I doing on my goals?")
	if !strings.Contains(got, "haven't set any financial goals") {
		t.Errorf("response %q does not prompt to create a goal", got)
	}
}

// The goal rule must report the goal with the lowest progress.
func TestRespond_GoalStatus_LowestProgress(t *testing.T) {
	repo := ledger.NewMemoryRepository()
	repo.AddGoals(
		models.Goal{ID: 1, UserID: 1, Name: "Vacation", TargetCent: 100000, CurrentCent: 10000},
		models.Goal{ID: 2, UserID: 1, Name: "Laptop", TargetCent: 50000, CurrentCent: 40000},
	)
	a := newTestAdvisor(repo)

	got := a.Respond(Context{UserID: 1}, "goal check")
	if !strings.Contains(got, "Vacation") {
		t.Errorf("response %q should name the 10%%-progress goal Vacation", got)
	}
	if !strings.Contains(got, "10.0%") {
		t.Errorf("response %q should report 10.0%%", got)
	}
}

func TestRespond_GoalStatus_TieKeepsFirst(t *testing.T) {
	repo := ledger.NewMemoryRepository()
	repo.AddGoals(
		models.Goal{ID: 1, UserID: 1, Name: "First", TargetCent: 10000, CurrentCent: 5000},
		models.Goal{ID: 2, UserID: 1, Name: "Second", TargetCent: 20000, CurrentCent: 10000},
	)
	a := newTestAdvisor(repo)

	got := a.Respond(Context{UserID: 1}, "any goal news?")
	if !strings.Contains(got, "First") {
		t.Errorf("response %q should keep the first goal on a progress tie", got)
	}
}

func TestRespond_Fallback(t *testing.T) {
	a := newTestAdvisor(ledger.NewMemoryRepository())

	got := a.Respond(Context{UserID: 1}, "what's the weather like?")
	if got != fallbackText {
		t.Errorf("response %q, want fallback text", got)
	}
}

// "how much ... save" must win over the investment rule when both match.
func TestRespond_Precedence(t *testing.T) {
	repo := ledger.NewMemoryRepository()
	repo.AddSavings(models.SavingsEntry{UserID: 1, AmountCent: 1000, OccurredAt: time.Now()})
	a := newTestAdvisor(repo)

	got := a.Respond(Context{UserID: 1, RiskPreference: models.RiskModerate},
		"How much should I save before I invest?")
	if !strings.Contains(got, "per month") {
		t.Errorf("response %q should come from the savings rule", got)
	}
}

func TestRespond_CaseInsensitive(t *testing.T) {
	a := newTestAdvisor(ledger.NewMemoryRepository())

	got := a.Respond(Context{UserID: 1, RiskPreference: models.RiskConservative}, "INVESTMENT?")
	if !strings.Contains(got, "conservative") {
		t.Errorf("response %q should match case-insensitively", got)
	}
}
