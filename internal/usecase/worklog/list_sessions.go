package worklog

import (
	"context"

	"github.com/aactechsol/massage-manager/internal/domain/earnings"
	domain "github.com/aactechsol/massage-manager/internal/domain/worklog"
	"github.com/aactechsol/massage-manager/internal/models"
)

// SessionRow is one listed session with its money columns resolved.
type SessionRow struct {
	Session      models.MassageSession
	SpaName      string
	PricePerHour float64
	Money        earnings.Breakdown
}

type ListSessions struct {
	repo   domain.Repository
	engine *earnings.Engine
}

func NewListSessions(
	repo domain.Repository,
	engine *earnings.Engine,
) *ListSessions {
	return &ListSessions{
		repo:   repo,
		engine: engine,
	}
}

func (uc *ListSessions) Execute(
	ctx context.Context,
	userID uint,
) ([]SessionRow, error) {

	sessions, err := uc.repo.ListSessions(ctx, userID, domain.SessionFilter{})
	if err != nil {
		return nil, err
	}

	links, err := uc.repo.ListRateLinks(ctx, userID)
	if err != nil {
		return nil, err
	}

	rates := make(earnings.RateTable, len(links))
	for _, l := range links {
		rates[l.SpaID] = l.PricePerHour
	}

	rows := make([]SessionRow, 0, len(sessions))
	for _, s := range sessions {
		rate := rates[s.SpaID] // 0 when the rate-link is missing

		rows = append(rows, SessionRow{
			Session:      s,
			SpaName:      s.Spa.Name,
			PricePerHour: rate,
			Money:        uc.engine.Row(s.Hours, rate),
		})
	}

	return rows, nil
}
