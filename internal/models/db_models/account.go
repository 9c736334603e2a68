package db_models

type Account struct {
	BaseModel
	Username     string `gorm:"size:80;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:128;not null"`

	Trips []Trip `gorm:"foreignKey:AccountID"`
}
