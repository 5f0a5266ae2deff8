package account

import (
	"context"

	"go.uber.org/zap"

	"github.com/aactechsol/massage-manager/internal/audit"
	domain "github.com/aactechsol/massage-manager/internal/domain/account"
	"github.com/aactechsol/massage-manager/internal/httperr"
	"github.com/aactechsol/massage-manager/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type UpdateUserInput struct {
	ActorID uint
	UserID  uint

	FirstName string
	LastName  string
	Phone     string
	IsActive  bool

	// Per-spa pricing, validated as one unit before anything is written.
	Rates []domain.RateChange
}

type UpdateUserOutput struct {
	User *models.User

	// Activated is true only on the false→true transition.
	Activated bool
	Notified  bool
}

// ======================================================
// USE CASE
// ======================================================

type UpdateUser struct {
	repo     domain.Repository
	notifier Notifier
	audit    *audit.Dispatcher
}

func NewUpdateUser(
	repo domain.Repository,
	notifier Notifier,
	audit *audit.Dispatcher,
) *UpdateUser {
	return &UpdateUser{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateUser) Execute(
	ctx context.Context,
	in UpdateUserInput,
) (*UpdateUserOutput, error) {

	user, err := uc.repo.GetUser(ctx, in.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	if user.IsAdmin {
		return nil, httperr.ErrBusiness("cannot_edit_admin")
	}

	if err := uc.validateRates(ctx, in.Rates); err != nil {
		return nil, err
	}

	wasActive := user.IsActive

	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.Phone = in.Phone
	user.IsActive = in.IsActive

	if err := uc.repo.UpdateUserWithRates(ctx, user, in.Rates); err != nil {
		return nil, err
	}

	out := &UpdateUserOutput{User: user, Notified: true}

	// welcome mail fires on the activation transition only, never on a
	// re-save of an already active account
	if !wasActive && user.IsActive {
		out.Activated = true

		if err := uc.notifier.SendWelcome(user.Email, user.FirstName); err != nil {
			out.Notified = false
			zap.L().Warn("welcome mail failed",
				zap.String("email", user.Email), zap.Error(err))
		}
	}

	if uc.audit != nil {
		action := "user_updated"
		if out.Activated {
			action = "user_activated"
		}
		uc.audit.Dispatch(audit.Event{
			ActorID:  &in.ActorID,
			Action:   action,
			Entity:   "user",
			EntityID: &user.ID,
			Metadata: map[string]any{"rates": len(in.Rates)},
		})
	}

	return out, nil
}

func (uc *UpdateUser) validateRates(
	ctx context.Context,
	rates []domain.RateChange,
) error {

	if len(rates) == 0 {
		return nil
	}

	spas, err := uc.repo.ListSpas(ctx)
	if err != nil {
		return err
	}

	known := make(map[uint]bool, len(spas))
	for _, s := range spas {
		known[s.ID] = true
	}

	seen := make(map[uint]bool, len(rates))
	for _, rc := range rates {
		if !known[rc.SpaID] {
			return httperr.ErrBusiness("unknown_spa")
		}
		if rc.PricePerHour < 0 {
			return httperr.ErrBusiness("invalid_rate")
		}
		if seen[rc.SpaID] {
			return httperr.ErrBusiness("duplicate_rate")
		}
		seen[rc.SpaID] = true
	}

	return nil
}
