package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/aactechsol/massage-manager/internal/domain/worklog"
	"github.com/aactechsol/massage-manager/internal/models"
)

type WorklogGormRepository struct {
	db *gorm.DB
}

func NewWorklogGormRepository(db *gorm.DB) *WorklogGormRepository {
	return &WorklogGormRepository{db: db}
}

// --------------------------------------------------
// Rate-links
// --------------------------------------------------

func (r *WorklogGormRepository) GetActiveRateLink(
	ctx context.Context,
	userID uint,
	spaID uint,
) (*models.UserSpa, error) {

	var link models.UserSpa
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND spa_id = ? AND is_active = ?", userID, spaID, true).
		First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *WorklogGormRepository) ListRateLinks(
	ctx context.Context,
	userID uint,
) ([]models.UserSpa, error) {

	var links []models.UserSpa
	if err := r.db.WithContext(ctx).
		Preload("Spa").
		Where("user_id = ?", userID).
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *WorklogGormRepository) ListActiveRateLinks(
	ctx context.Context,
	userID uint,
) ([]models.UserSpa, error) {

	var links []models.UserSpa
	if err := r.db.WithContext(ctx).
		Preload("Spa").
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("spa_id ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// --------------------------------------------------
// Sessions
// --------------------------------------------------

func (r *WorklogGormRepository) CreateSession(
	ctx context.Context,
	session *models.MassageSession,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(session).Error
	})
}

func (r *WorklogGormRepository) ListSessions(
	ctx context.Context,
	userID uint,
	filter domain.SessionFilter,
) ([]models.MassageSession, error) {

	q := r.db.WithContext(ctx).
		Preload("Spa").
		Where("user_id = ?", userID)

	if filter.SpaID != nil {
		q = q.Where("spa_id = ?", *filter.SpaID)
	}
	if filter.DateFrom != nil {
		q = q.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		q = q.Where("date <= ?", *filter.DateTo)
	}

	var sessions []models.MassageSession
	if err := q.
		Order("date DESC, id DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// Compile-time check
var _ domain.Repository = (*WorklogGormRepository)(nil)
