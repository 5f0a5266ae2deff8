package models

import "time"

type MassageSession struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	SpaID  uint `gorm:"not null" json:"spa_id"`
	Spa    Spa  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"spa"`

	Date  time.Time `gorm:"type:date;not null" json:"date"`
	Hours float64   `gorm:"not null" json:"hours"`

	// TODO: surcharge amount for sessions reached by car is still an open
	// product decision; the flag is stored but does not affect earnings.
	IsCar bool `gorm:"default:false" json:"is_car"`

	Comments string `gorm:"type:text" json:"comments"`

	CreatedAt time.Time `json:"created_at"`
}
