package worklog

import (
	"context"
	"time"

	"github.com/aactechsol/massage-manager/internal/models"
)

// SessionFilter restricts a worker's session set before aggregation.
// DateTo is inclusive.
type SessionFilter struct {
	SpaID    *uint
	DateFrom *time.Time
	DateTo   *time.Time
}

type Repository interface {
	// -------- Rate-links --------
	GetActiveRateLink(
		ctx context.Context,
		userID uint,
		spaID uint,
	) (*models.UserSpa, error)

	// ListRateLinks returns every rate-link regardless of status: sessions
	// logged before a deactivation still resolve their historical price.
	ListRateLinks(
		ctx context.Context,
		userID uint,
	) ([]models.UserSpa, error)

	ListActiveRateLinks(
		ctx context.Context,
		userID uint,
	) ([]models.UserSpa, error)

	// -------- Sessions --------
	CreateSession(
		ctx context.Context,
		session *models.MassageSession,
	) error

	ListSessions(
		ctx context.Context,
		userID uint,
		filter SessionFilter,
	) ([]models.MassageSession, error)
}
