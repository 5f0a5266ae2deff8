package models

import "time"

// UserSpa is the rate-link: the hourly price a worker charges at one spa.
// Rows are never hard-deleted, deactivation keeps pricing history for
// sessions already logged.
type UserSpa struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;uniqueIndex:idx_user_spa" json:"user_id"`
	SpaID  uint `gorm:"not null;uniqueIndex:idx_user_spa" json:"spa_id"`
	Spa    Spa  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"spa"`

	PricePerHour float64 `gorm:"not null;default:0" json:"price_per_hour"`
	IsActive     bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
