// Package advisor implements the rule-based financial Q&A: an ordered
// list of (predicate, handler) rules evaluated first-match-wins over the
// user's question, drawing numbers from the ledger aggregator.
package advisor

import (
	"fmt"
	"strings"

	"startive/internal/ledger"
	"startive/internal/models"

	"github.com/shopspring/decimal"
)

const fallbackText = "I'm here to help with your financial questions. " +
	"You can ask about savings recommendations, investment strategies, your goals, or roundup savings."

// Context carries what the rules need to know about the asking user.
type Context struct {
	UserID         uint
	RiskPreference string
}

type rule struct {
	match   func(question string) bool
	respond func(ctx Context) string
}

// Advisor answers free-text questions with canned, deterministic
// responses. It always returns a string, even when the ledger read
// behind an answer fails.
type Advisor struct {
	ledger *ledger.Service
	rules  []rule
}

func New(l *ledger.Service) *Advisor {
	a := &Advisor{ledger: l}
	// precedence matters: savings estimate before investment advice
	// before goal status
	a.rules = []rule{
		{matchSavingsEstimate, a.savingsEstimate},
		{matchInvestment, a.investmentAdvice},
		{matchGoal, a.goalStatus},
	}
	return a
}

// Respond routes the question through the rule list, case-insensitively.
func (a *Advisor) Respond(ctx Context, question string) string {
	q := strings.ToLower(question)
	for _, r := range a.rules {
		if r.match(q) {
			return r.respond(ctx)
		}
	}
	return fallbackText
}

func matchSavingsEstimate(q string) bool {
	return strings.Contains(q, "how much") &&
		(strings.Contains(q, "save") || strings.Contains(q, "saving"))
}

func matchInvestment(q string) bool {
	return strings.Contains(q, "invest")
}

func matchGoal(q string) bool {
	return strings.Contains(q, "goal")
}

func (a *Advisor) savingsEstimate(ctx Context) string {
	totalCent, err := a.ledger.TotalSavingsCent(ctx.UserID)
	if err != nil {
		return fallbackText
	}

	// recommend 10% of total savings per month; cents/1000 = dollars/10
	monthly := decimal.NewFromInt(totalCent).Div(decimal.NewFromInt(1000))
	return fmt.Sprintf(
		"Based on your recent transactions, you can safely save approximately $%s per month.",
		monthly.StringFixed(2),
	)
}

func (a *Advisor) investmentAdvice(ctx Context) string {
	switch ctx.RiskPreference {
	case models.RiskConservative:
		return "With your conservative risk profile, I recommend focusing on high-yield savings accounts and stable ETFs."
	case models.RiskModerate:
		return "With your moderate risk profile, a balanced approach of ETFs and some high-yield savings would work well."
	case models.RiskAggressive:
		return "With your aggressive risk profile, you might consider a higher allocation to ETFs and some cryptocurrency exposure."
	default:
		return "Set a risk preference in your profile and I can tailor an investment strategy to it."
	}
}

func (a *Advisor) goalStatus(ctx Context) string {
	goals, err := a.ledger.GoalProgressByUser(ctx.UserID)
	if err != nil {
		return fallbackText
	}
	if len(goals) == 0 {
		return "You haven't set any financial goals yet. Would you like to create one?"
	}

	// report the goal that is furthest behind; ties keep the first one
	behind := goals[0]
	for _, g := range goals[1:] {
		if g.Progress < behind.Progress {
			behind = g
		}
	}
	return fmt.Sprintf(
		"You're making progress on your '%s' goal! You're %.1f%% of the way there.",
		behind.Name, behind.Progress,
	)
}
