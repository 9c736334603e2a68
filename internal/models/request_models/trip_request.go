package request_models

// CreateTripRequest carries the trip parameters. Days and budget are
// validated here instead of being defaulted permissively.
type CreateTripRequest struct {
	Name      string   `json:"name" binding:"required,max=80"`
	City      string   `json:"city" binding:"required,max=40"`
	StartDate string   `json:"start_date" binding:"required,datetime=2006-01-02"`
	Days      int      `json:"days" binding:"required,min=1"`
	Interests []string `json:"interests"`
	Budget    float64  `json:"budget" binding:"gte=0"`
}
