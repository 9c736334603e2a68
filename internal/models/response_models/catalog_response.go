package response_models

type AttractionResponse struct {
	ID            string  `json:"id"`
	City          string  `json:"city"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	DurationHours float64 `json:"duration_hours"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	ImagePath     string  `json:"image_path,omitempty"`
}
