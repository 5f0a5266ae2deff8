package worklog

import (
	"context"

	"github.com/aactechsol/massage-manager/internal/domain/earnings"
	domain "github.com/aactechsol/massage-manager/internal/domain/worklog"
)

type StatisticsInput struct {
	UserID uint
	Filter domain.SessionFilter

	// GroupBy is accepted at the boundary but has no effect on the result.
	GroupBy string
}

type Statistics struct {
	repo   domain.Repository
	engine *earnings.Engine
}

func NewStatistics(
	repo domain.Repository,
	engine *earnings.Engine,
) *Statistics {
	return &Statistics{
		repo:   repo,
		engine: engine,
	}
}

func (uc *Statistics) Execute(
	ctx context.Context,
	in StatisticsInput,
) (earnings.Summary, error) {

	sessions, err := uc.repo.ListSessions(ctx, in.UserID, in.Filter)
	if err != nil {
		return earnings.Summary{}, err
	}

	rates, err := uc.rateTable(ctx, in.UserID)
	if err != nil {
		return earnings.Summary{}, err
	}

	entries := make([]earnings.Entry, 0, len(sessions))
	for _, s := range sessions {
		entries = append(entries, earnings.Entry{
			SpaID:   s.SpaID,
			SpaName: s.Spa.Name,
			Hours:   s.Hours,
		})
	}

	return uc.engine.Summarize(entries, rates), nil
}

func (uc *Statistics) rateTable(
	ctx context.Context,
	userID uint,
) (earnings.RateTable, error) {

	links, err := uc.repo.ListRateLinks(ctx, userID)
	if err != nil {
		return nil, err
	}

	rates := make(earnings.RateTable, len(links))
	for _, l := range links {
		rates[l.SpaID] = l.PricePerHour
	}
	return rates, nil
}
