package account

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aactechsol/massage-manager/internal/audit"
	domain "github.com/aactechsol/massage-manager/internal/domain/account"
	"github.com/aactechsol/massage-manager/internal/domain/reset"
	"github.com/aactechsol/massage-manager/internal/httperr"
)

type RequestResetInput struct {
	Email string
}

type RequestResetOutput struct {
	Notified bool
}

type RequestReset struct {
	repo     domain.Repository
	notifier Notifier
	audit    *audit.Dispatcher
}

func NewRequestReset(
	repo domain.Repository,
	notifier Notifier,
	audit *audit.Dispatcher,
) *RequestReset {
	return &RequestReset{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

func (uc *RequestReset) Execute(
	ctx context.Context,
	in RequestResetInput,
) (*RequestResetOutput, error) {

	email := strings.ToLower(strings.TrimSpace(in.Email))

	user, err := uc.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, httperr.ErrBusiness("unknown_email")
	}

	pr := reset.New(user.ID, time.Now())
	if err := uc.repo.CreatePasswordReset(ctx, &pr); err != nil {
		return nil, err
	}

	notified := true
	if err := uc.notifier.SendResetNotice(
		user.FirstName, user.LastName, user.Email, pr.Token,
	); err != nil {
		notified = false
		zap.L().Warn("reset notice mail failed",
			zap.String("email", user.Email), zap.Error(err))
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			ActorID:  &user.ID,
			Action:   "password_reset_requested",
			Entity:   "password_reset",
			EntityID: &pr.ID,
		})
	}

	return &RequestResetOutput{Notified: notified}, nil
}
