package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/aactechsol/massage-manager/internal/httperr"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FirstName    string `gorm:"size:50;not null" json:"first_name"`
	LastName     string `gorm:"size:50;not null" json:"last_name"`
	Phone        string `gorm:"size:20" json:"phone"`

	IsActive bool `gorm:"default:false" json:"is_active"`
	IsAdmin  bool `gorm:"default:false" json:"is_admin"`

	Spas []UserSpa `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate keeps the admin role a singleton: the seed creates the one
// admin row and nothing else may insert a second one.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if !u.IsAdmin {
		return nil
	}

	var count int64
	if err := tx.Model(&User{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusiness("admin_already_exists")
	}
	return nil
}
