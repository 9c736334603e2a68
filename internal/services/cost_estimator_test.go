package services

import (
	"math"
	"testing"
)

func TestEstimateTripCost(t *testing.T) {
	tests := []struct {
		name            string
		days            int
		budget          float64
		expectedTotal   float64
		expectedPercent float64
	}{
		{"two days comfortably inside budget", 2, 10000, 3600, 36},
		{"budget blown clamps to 100", 3, 1000, 5400, 100},
		{"zero budget reports zero percent", 2, 0, 3600, 0},
		{"exact budget", 1, 1800, 1800, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateTripCost(tt.days, tt.budget)
			if got.Total != tt.expectedTotal {
				t.Errorf("total: expected %.0f, got %.0f", tt.expectedTotal, got.Total)
			}
			if got.PerDay != 1800 {
				t.Errorf("per-day estimate should be the flat 1800, got %.0f", got.PerDay)
			}
			if math.Abs(got.BudgetPercentUsed-tt.expectedPercent) > 1e-9 {
				t.Errorf("percent used: expected %.1f, got %.1f", tt.expectedPercent, got.BudgetPercentUsed)
			}
			if got.BudgetRemaining != tt.budget-tt.expectedTotal {
				t.Errorf("remaining: expected %.0f, got %.0f", tt.budget-tt.expectedTotal, got.BudgetRemaining)
			}
		})
	}
}
