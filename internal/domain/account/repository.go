package account

import (
	"context"

	"github.com/aactechsol/massage-manager/internal/models"
)

// RateChange is one row of the structured per-spa pricing payload the admin
// submits when editing a worker.
type RateChange struct {
	SpaID        uint    `json:"spa_id" binding:"required"`
	PricePerHour float64 `json:"price_per_hour"`
	IsActive     bool    `json:"is_active"`
}

type Counts struct {
	TotalUsers         int64 `json:"total_users"`
	ActiveUsers        int64 `json:"active_users"`
	PendingActivations int64 `json:"pending_activations"`
	TotalSpas          int64 `json:"total_spas"`
}

type Repository interface {
	// -------- Users --------
	// FindUserByEmail returns (nil, nil) when no such user exists.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	GetUser(ctx context.Context, id uint) (*models.User, error)

	CreateUser(ctx context.Context, user *models.User) error

	// UpdateUserWithRates persists the user's fields and upserts the given
	// rate-links in a single transaction. Deactivation never deletes a link.
	UpdateUserWithRates(
		ctx context.Context,
		user *models.User,
		rates []RateChange,
	) error

	ListWorkers(ctx context.Context) ([]models.User, error)

	DashboardCounts(ctx context.Context) (Counts, error)

	// -------- Spas --------
	ListSpas(ctx context.Context) ([]models.Spa, error)

	// -------- Password resets --------
	CreatePasswordReset(ctx context.Context, pr *models.PasswordReset) error

	// GetPasswordResetByToken returns (nil, nil) when the token is unknown.
	GetPasswordResetByToken(ctx context.Context, token string) (*models.PasswordReset, error)

	// ConsumePasswordReset marks the token used and stores the new hash in
	// the same transaction.
	ConsumePasswordReset(
		ctx context.Context,
		pr *models.PasswordReset,
		passwordHash string,
	) error
}
