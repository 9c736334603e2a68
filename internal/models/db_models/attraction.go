package db_models

// Attraction is a curated catalog row. Seeded once at startup and never
// mutated by the planner.
type Attraction struct {
	BaseModel
	City          string  `gorm:"size:40;index"`
	Name          string  `gorm:"size:120"`
	Category      string  `gorm:"size:40"`
	DurationHours float64
	Lat           float64
	Lon           float64
	ImagePath     string `gorm:"size:200"`
	CatalogOrder  int    `gorm:"index"`
}
