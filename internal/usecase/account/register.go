package account

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/aactechsol/massage-manager/internal/domain/account"
	"github.com/aactechsol/massage-manager/internal/httperr"
	"github.com/aactechsol/massage-manager/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type RegisterInput struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Password  string
}

type RegisterOutput struct {
	User *models.User

	// Notified reports whether the activation request reached the admin.
	// A false value does not undo the registration.
	Notified bool
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo     domain.Repository
	notifier Notifier
}

func NewRegister(repo domain.Repository, notifier Notifier) *Register {
	return &Register{
		repo:     repo,
		notifier: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*RegisterOutput, error) {

	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := uc.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness("email_already_registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		IsActive:     false,
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	notified := true
	if err := uc.notifier.SendActivationRequest(
		user.FirstName, user.LastName, user.Email, user.Phone,
	); err != nil {
		notified = false
		zap.L().Warn("activation request mail failed",
			zap.String("email", user.Email), zap.Error(err))
	}

	return &RegisterOutput{User: user, Notified: notified}, nil
}
