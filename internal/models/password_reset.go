package models

import "time"

type PasswordReset struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint   `gorm:"not null;index" json:"user_id"`
	Token  string `gorm:"size:100;uniqueIndex;not null" json:"-"`

	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Used      bool      `gorm:"default:false" json:"used"`

	CreatedAt time.Time `json:"created_at"`
}
