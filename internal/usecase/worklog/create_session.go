package worklog

import (
	"context"
	"time"

	"github.com/aactechsol/massage-manager/internal/audit"
	domain "github.com/aactechsol/massage-manager/internal/domain/worklog"
	"github.com/aactechsol/massage-manager/internal/httperr"
	"github.com/aactechsol/massage-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateSessionInput struct {
	UserID uint
	SpaID  uint

	Date     time.Time
	Hours    float64
	IsCar    bool
	Comments string
}

// ======================================================
// USE CASE
// ======================================================

type CreateSession struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateSession(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateSession {
	return &CreateSession{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateSession) Execute(
	ctx context.Context,
	in CreateSessionInput,
) (*models.MassageSession, error) {

	if in.Hours <= 0 {
		return nil, httperr.ErrBusiness("invalid_hours")
	}

	// the spa must be one the worker is allowed to log against
	if _, err := uc.repo.GetActiveRateLink(ctx, in.UserID, in.SpaID); err != nil {
		return nil, httperr.ErrBusiness("spa_not_allowed")
	}

	session := &models.MassageSession{
		UserID:   in.UserID,
		SpaID:    in.SpaID,
		Date:     in.Date,
		Hours:    in.Hours,
		IsCar:    in.IsCar,
		Comments: in.Comments,
	}

	if err := uc.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			ActorID:  &in.UserID,
			Action:   "session_created",
			Entity:   "massage_session",
			EntityID: &session.ID,
		})
	}

	return session, nil
}
