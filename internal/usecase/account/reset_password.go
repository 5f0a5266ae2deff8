package account

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/aactechsol/massage-manager/internal/domain/account"
	"github.com/aactechsol/massage-manager/internal/domain/reset"
	"github.com/aactechsol/massage-manager/internal/httperr"
)

type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

type ResetPassword struct {
	repo domain.Repository
}

func NewResetPassword(repo domain.Repository) *ResetPassword {
	return &ResetPassword{repo: repo}
}

func (uc *ResetPassword) Execute(
	ctx context.Context,
	in ResetPasswordInput,
) error {

	if len(in.NewPassword) < 6 {
		return httperr.ErrBusiness("invalid_password")
	}

	pr, err := uc.repo.GetPasswordResetByToken(ctx, in.Token)
	if err != nil {
		return err
	}

	// unknown, used and expired tokens are indistinguishable to the caller
	if err := reset.Consume(pr, time.Now()); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return uc.repo.ConsumePasswordReset(ctx, pr, string(hashed))
}
