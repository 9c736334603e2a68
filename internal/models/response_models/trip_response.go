package response_models

type TripResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	StartDate string  `json:"start_date"`
	Days      int     `json:"days"`
	Interests string  `json:"interests"`
	Budget    float64 `json:"budget"`
}

type ItineraryItemResponse struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	StartTime     string  `json:"start"`
	EndTime       string  `json:"end"`
	DurationHours float64 `json:"duration_hours"`
	OrderIndex    int     `json:"order_index"`
}

type DayGroupResponse struct {
	Day   int                     `json:"day"`
	Items []ItineraryItemResponse `json:"items"`
}

type PackingItemResponse struct {
	ID       string `json:"id"`
	ItemName string `json:"item_name"`
	IsPacked bool   `json:"is_packed"`
}

// CostEstimate is a flat per-day display heuristic. It is not derived from
// the scheduled attractions.
type CostEstimate struct {
	PerDay            float64 `json:"estimated_cost_per_day"`
	Total             float64 `json:"total_estimated_cost"`
	BudgetRemaining   float64 `json:"budget_remaining"`
	BudgetPercentUsed float64 `json:"budget_percentage_used"`
}

type TripDetailResponse struct {
	Trip         TripResponse          `json:"trip"`
	DayGroups    []DayGroupResponse    `json:"day_groups"`
	PackingItems []PackingItemResponse `json:"packing_items"`
	Cost         CostEstimate          `json:"cost_estimate"`
}
