package services

import "yatra/internal/models/response_models"

// Flat per-day display constants. The estimate is a presentation heuristic
// and is not computed from the attractions the planner actually scheduled.
const (
	foodCostPerDay   = 500.0
	travelCostPerDay = 1000.0
	entryCostPerDay  = 300.0
)

func EstimateTripCost(days int, budget float64) response_models.CostEstimate {
	perDay := foodCostPerDay + travelCostPerDay + entryCostPerDay
	total := perDay * float64(days)

	percentUsed := 0.0
	if budget > 0 {
		percentUsed = total / budget * 100
		if percentUsed > 100 {
			percentUsed = 100
		} else if percentUsed < 0 {
			percentUsed = 0
		}
	}

	return response_models.CostEstimate{
		PerDay:            perDay,
		Total:             total,
		BudgetRemaining:   budget - total,
		BudgetPercentUsed: percentUsed,
	}
}
