package db_models

import "github.com/google/uuid"

// TripItem is one scheduled visit. The planner writes the full set for a
// trip in one transaction; items are never edited afterwards.
type TripItem struct {
	BaseModel
	TripID       uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_trip_day_order,priority:1"`
	Day          int       `gorm:"uniqueIndex:idx_trip_day_order,priority:2"`
	OrderIndex   int       `gorm:"uniqueIndex:idx_trip_day_order,priority:3"`
	AttractionID uuid.UUID `gorm:"type:uuid"`
	StartTime    string    `gorm:"size:10"` // HH:MM
	EndTime      string    `gorm:"size:10"` // HH:MM
}
