package db_models

import "github.com/google/uuid"

type Trip struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"`
	Name      string    `gorm:"size:80"`
	City      string    `gorm:"size:40"`
	StartDate string    `gorm:"size:20"` // YYYY-MM-DD
	Days      int
	Interests string `gorm:"size:120"` // comma separated
	Budget    float64

	Items        []TripItem    `gorm:"foreignKey:TripID"`
	PackingItems []PackingItem `gorm:"foreignKey:TripID"`
}
