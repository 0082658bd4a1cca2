package roundup

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCompute(t *testing.T) {
	testCases := []struct {
		amount string
		want   string
	}{
		{"4.35", "0.65"},
		{"10.00", "0"},
		{"10", "0"},
		{"0.01", "0.99"},
		{"12.40", "0.6"},
		{"0.99", "0.01"},
		{"1.01", "0.99"},
		{"100.50", "0.5"},
		{"3", "0"},
	}

	for _, tc := range testCases {
		amount := decimal.RequireFromString(tc.amount)
		want := decimal.RequireFromString(tc.want)

		got := Compute(amount)
		if !got.Equal(want) {
			t.Errorf("Compute(%s) = %s, want %s", tc.amount, got, want)
		}
	}
}

// Compute must stay inside [0, 1) and be zero exactly for whole amounts.
func TestCompute_Range(t *testing.T) {
	one := decimal.NewFromInt(1)

	for cents := int64(1); cents <= 500; cents++ {
		amount := decimal.New(cents, -2) // 0.01 .. 5.00
		got := Compute(amount)

		if got.IsNegative() || got.GreaterThanOrEqual(one) {
			t.Fatalf("Compute(%s) = %s, out of [0, 1)", amount, got)
		}

		whole := cents%100 == 0
		if whole != got.IsZero() {
			t.Errorf("Compute(%s) = %s, zero iff whole amount", amount, got)
		}
	}
}

// Whole-dollar amounts must not trigger a spurious 1.00 round-up.
func TestCompute_WholeAmount(t *testing.T) {
	for _, s := range []string{"1", "1.00", "250.00", "9999"} {
		got := Compute(decimal.RequireFromString(s))
		if !got.IsZero() {
			t.Errorf("Compute(%s) = %s, want 0", s, got)
		}
	}
}

func TestComputeCent(t *testing.T) {
	testCases := []struct {
		amountCent int64
		want       int64
	}{
		{435, 65},
		{1000, 0},
		{1, 99},
		{1240, 60},
		{99, 1},
	}

	for _, tc := range testCases {
		if got := ComputeCent(tc.amountCent); got != tc.want {
			t.Errorf("ComputeCent(%d) = %d, want %d", tc.amountCent, got, tc.want)
		}
	}
}

// Compute and ComputeCent must agree for any amount expressible in cents.
func TestComputeCent_MatchesCompute(t *testing.T) {
	for cents := int64(1); cents <= 1000; cents++ {
		fromDecimal := Compute(decimal.New(cents, -2)).Mul(decimal.NewFromInt(100)).IntPart()
		if got := ComputeCent(cents); got != fromDecimal {
			t.Fatalf("ComputeCent(%d) = %d, Compute gives %d", cents, got, fromDecimal)
		}
	}
}
