package db_models

import "github.com/google/uuid"

type PackingItem struct {
	BaseModel
	TripID   uuid.UUID `gorm:"type:uuid;index"`
	ItemName string    `gorm:"size:120;not null"`
	IsPacked bool      `gorm:"default:false"`
}
