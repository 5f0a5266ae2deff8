package db

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/aactechsol/massage-manager/internal/config"
	"github.com/aactechsol/massage-manager/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		zap.L().Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		zap.L().Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Spa{},
		&models.User{},
		&models.UserSpa{},
		&models.MassageSession{},
		&models.PasswordReset{},
		&models.AuditLog{},
	); err != nil {
		zap.L().Fatal("failed to migrate", zap.Error(err))
	}

	Seed(db, cfg)

	return db
}

// Seed creates the single admin account and the fixture spas on an empty
// database. It is a no-op on every later startup.
func Seed(db *gorm.DB, cfg *config.Config) {
	var admins int64
	if err := db.Model(&models.User{}).
		Where("is_admin = ?", true).
		Count(&admins).Error; err != nil {
		zap.L().Fatal("failed to check admin", zap.Error(err))
	}

	if admins == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			zap.L().Fatal("failed to hash admin password", zap.Error(err))
		}

		admin := models.User{
			Email:        cfg.AdminEmail,
			PasswordHash: string(hashed),
			FirstName:    "Admin",
			LastName:     "System",
			IsActive:     true,
			IsAdmin:      true,
		}
		if err := db.Create(&admin).Error; err != nil {
			zap.L().Fatal("failed to create admin", zap.Error(err))
		}

		zap.L().Info("admin account created", zap.String("email", cfg.AdminEmail))
	}

	var spas int64
	if err := db.Model(&models.Spa{}).Count(&spas).Error; err != nil {
		zap.L().Fatal("failed to check spas", zap.Error(err))
	}

	if spas == 0 {
		fixtures := []models.Spa{
			{Name: "Spa Central", Address: "Calle Principal 123", Phone: "+34 912 345 678", IsActive: true},
			{Name: "Spa Norte", Address: "Avenida Norte 456", Phone: "+34 913 456 789", IsActive: true},
			{Name: "Spa Sur", Address: "Plaza Sur 789", Phone: "+34 914 567 890", IsActive: true},
		}
		if err := db.Create(&fixtures).Error; err != nil {
			zap.L().Fatal("failed to seed spas", zap.Error(err))
		}

		zap.L().Info("fixture spas created", zap.Int("count", len(fixtures)))
	}
}
