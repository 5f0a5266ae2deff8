package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/aactechsol/massage-manager/internal/domain/account"
	"github.com/aactechsol/massage-manager/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *AccountGormRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AccountGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AccountGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *AccountGormRepository) UpdateUserWithRates(
	ctx context.Context,
	user *models.User,
	rates []domain.RateChange,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Save(user).Error; err != nil {
			return err
		}

		for _, rc := range rates {

			var link models.UserSpa
			err := tx.
				Where("user_id = ? AND spa_id = ?", user.ID, rc.SpaID).
				First(&link).Error

			switch {
			case err == nil:
				link.PricePerHour = rc.PricePerHour
				link.IsActive = rc.IsActive
				if err := tx.Save(&link).Error; err != nil {
					return err
				}

			case errors.Is(err, gorm.ErrRecordNotFound):
				// only materialize a link the first time it is activated
				if !rc.IsActive {
					continue
				}
				link = models.UserSpa{
					UserID:       user.ID,
					SpaID:        rc.SpaID,
					PricePerHour: rc.PricePerHour,
					IsActive:     true,
				}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}

			default:
				return err
			}
		}

		return nil
	})
}

func (r *AccountGormRepository) ListWorkers(
	ctx context.Context,
) ([]models.User, error) {

	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("is_admin = ?", false).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *AccountGormRepository) DashboardCounts(
	ctx context.Context,
) (domain.Counts, error) {

	var counts domain.Counts
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.User{}).
		Where("is_admin = ?", false).
		Count(&counts.TotalUsers).Error; err != nil {
		return counts, err
	}
	if err := db.Model(&models.User{}).
		Where("is_admin = ? AND is_active = ?", false, true).
		Count(&counts.ActiveUsers).Error; err != nil {
		return counts, err
	}
	counts.PendingActivations = counts.TotalUsers - counts.ActiveUsers

	if err := db.Model(&models.Spa{}).
		Count(&counts.TotalSpas).Error; err != nil {
		return counts, err
	}

	return counts, nil
}

// --------------------------------------------------
// Spas
// --------------------------------------------------

func (r *AccountGormRepository) ListSpas(
	ctx context.Context,
) ([]models.Spa, error) {

	var spas []models.Spa
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&spas).Error; err != nil {
		return nil, err
	}
	return spas, nil
}

// --------------------------------------------------
// Password resets
// --------------------------------------------------

func (r *AccountGormRepository) CreatePasswordReset(
	ctx context.Context,
	pr *models.PasswordReset,
) error {
	return r.db.WithContext(ctx).Create(pr).Error
}

func (r *AccountGormRepository) GetPasswordResetByToken(
	ctx context.Context,
	token string,
) (*models.PasswordReset, error) {

	var pr models.PasswordReset
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&pr).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

func (r *AccountGormRepository) ConsumePasswordReset(
	ctx context.Context,
	pr *models.PasswordReset,
	passwordHash string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Save(pr).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).
			Where("id = ?", pr.UserID).
			Update("password_hash", passwordHash).Error
	})
}

// Compile-time check
var _ domain.Repository = (*AccountGormRepository)(nil)
