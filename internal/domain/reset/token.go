package reset

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aactechsol/massage-manager/internal/httperr"
	"github.com/aactechsol/massage-manager/internal/models"
)

// ===============================
// Password Reset Token Rules
// ===============================

const TTL = 24 * time.Hour

func New(userID uint, now time.Time) models.PasswordReset {
	token := strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")

	return models.PasswordReset{
		UserID:    userID,
		Token:     token,
		ExpiresAt: now.Add(TTL),
	}
}

// CanConsume gates every password change through a token. Missing, already
// used and expired tokens fail with the same code so callers cannot tell
// which it was.
func CanConsume(pr *models.PasswordReset, now time.Time) error {
	if pr == nil || pr.Used || now.After(pr.ExpiresAt) {
		return httperr.ErrBusiness("invalid_or_expired_token")
	}
	return nil
}

func Consume(pr *models.PasswordReset, now time.Time) error {
	if err := CanConsume(pr, now); err != nil {
		return err
	}

	pr.Used = true
	return nil
}
