package worklog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aactechsol/massage-manager/internal/domain/earnings"
	domain "github.com/aactechsol/massage-manager/internal/domain/worklog"
	"github.com/aactechsol/massage-manager/internal/httperr"
	"github.com/aactechsol/massage-manager/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeWorklogRepo struct {
	links    []models.UserSpa
	sessions []models.MassageSession

	lastFilter domain.SessionFilter
}

func (f *fakeWorklogRepo) GetActiveRateLink(
	_ context.Context, userID, spaID uint,
) (*models.UserSpa, error) {
	for i := range f.links {
		l := &f.links[i]
		if l.UserID == userID && l.SpaID == spaID && l.IsActive {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeWorklogRepo) ListRateLinks(
	_ context.Context, userID uint,
) ([]models.UserSpa, error) {
	var out []models.UserSpa
	for _, l := range f.links {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeWorklogRepo) ListActiveRateLinks(
	_ context.Context, userID uint,
) ([]models.UserSpa, error) {
	var out []models.UserSpa
	for _, l := range f.links {
		if l.UserID == userID && l.IsActive {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeWorklogRepo) CreateSession(
	_ context.Context, session *models.MassageSession,
) error {
	session.ID = uint(len(f.sessions) + 1)
	f.sessions = append(f.sessions, *session)
	return nil
}

func (f *fakeWorklogRepo) ListSessions(
	_ context.Context, userID uint, filter domain.SessionFilter,
) ([]models.MassageSession, error) {
	f.lastFilter = filter

	var out []models.MassageSession
	for _, s := range f.sessions {
		if s.UserID != userID {
			continue
		}
		if filter.SpaID != nil && s.SpaID != *filter.SpaID {
			continue
		}
		if filter.DateFrom != nil && s.Date.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && s.Date.After(*filter.DateTo) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

var _ domain.Repository = (*fakeWorklogRepo)(nil)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ======================================================
// CREATE SESSION
// ======================================================

func TestCreateSessionRequiresActiveRateLink(t *testing.T) {
	repo := &fakeWorklogRepo{
		links: []models.UserSpa{
			{UserID: 1, SpaID: 2, PricePerHour: 15, IsActive: false},
		},
	}
	uc := NewCreateSession(repo, nil)

	tests := []struct {
		name  string
		spaID uint
	}{
		{"no rate-link at all", 9},
		{"deactivated rate-link", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), CreateSessionInput{
				UserID: 1,
				SpaID:  tt.spaID,
				Date:   date(2026, 3, 10),
				Hours:  2,
			})
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, "spa_not_allowed"))
			assert.Empty(t, repo.sessions, "nothing may be written")
		})
	}
}

func TestCreateSessionRejectsNonPositiveHours(t *testing.T) {
	repo := &fakeWorklogRepo{
		links: []models.UserSpa{{UserID: 1, SpaID: 2, PricePerHour: 15, IsActive: true}},
	}
	uc := NewCreateSession(repo, nil)

	for _, hours := range []float64{0, -1.5} {
		_, err := uc.Execute(context.Background(), CreateSessionInput{
			UserID: 1, SpaID: 2, Date: date(2026, 3, 10), Hours: hours,
		})
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "invalid_hours"))
	}
	assert.Empty(t, repo.sessions)
}

func TestCreateSessionStoresEverything(t *testing.T) {
	repo := &fakeWorklogRepo{
		links: []models.UserSpa{{UserID: 1, SpaID: 2, PricePerHour: 15, IsActive: true}},
	}
	uc := NewCreateSession(repo, nil)

	session, err := uc.Execute(context.Background(), CreateSessionInput{
		UserID:   1,
		SpaID:    2,
		Date:     date(2026, 3, 10),
		Hours:    2.5,
		IsCar:    true,
		Comments: "turno de tarde",
	})
	require.NoError(t, err)

	require.Len(t, repo.sessions, 1)
	stored := repo.sessions[0]
	assert.Equal(t, uint(1), stored.UserID)
	assert.Equal(t, uint(2), stored.SpaID)
	assert.Equal(t, 2.5, stored.Hours)
	assert.True(t, stored.IsCar)
	assert.Equal(t, "turno de tarde", stored.Comments)
	assert.NotZero(t, session.ID)
}

// ======================================================
// STATISTICS
// ======================================================

func TestStatisticsWorkedExample(t *testing.T) {
	spaA := models.Spa{ID: 1, Name: "SpaA"}
	spaB := models.Spa{ID: 2, Name: "SpaB"}

	repo := &fakeWorklogRepo{
		links: []models.UserSpa{
			{UserID: 7, SpaID: 1, PricePerHour: 20, IsActive: true},
		},
		sessions: []models.MassageSession{
			{ID: 1, UserID: 7, SpaID: 1, Spa: spaA, Date: date(2026, 3, 9), Hours: 3},
			{ID: 2, UserID: 7, SpaID: 2, Spa: spaB, Date: date(2026, 3, 10), Hours: 2},
		},
	}
	uc := NewStatistics(repo, earnings.NewEngine(0.21))

	s, err := uc.Execute(context.Background(), StatisticsInput{UserID: 7})
	require.NoError(t, err)

	assert.Equal(t, 2, s.TotalSessions)
	assert.InDelta(t, 5.0, s.TotalHours, 1e-9)
	assert.InDelta(t, 60.0, s.TotalEarnings, 1e-9)
	assert.InDelta(t, 12.6, s.TaxAmount, 1e-9)
	assert.InDelta(t, 47.4, s.NetEarnings, 1e-9)
	assert.InDelta(t, 60.0, s.EarningsBySpa["SpaA"], 1e-9)
	assert.NotContains(t, s.EarningsBySpa, "SpaB")
}

func TestStatisticsUsesDeactivatedRateForHistory(t *testing.T) {
	// a deactivated rate-link still prices sessions already logged
	spa := models.Spa{ID: 1, Name: "Spa Central"}

	repo := &fakeWorklogRepo{
		links: []models.UserSpa{
			{UserID: 7, SpaID: 1, PricePerHour: 30, IsActive: false},
		},
		sessions: []models.MassageSession{
			{ID: 1, UserID: 7, SpaID: 1, Spa: spa, Date: date(2026, 1, 5), Hours: 2},
		},
	}
	uc := NewStatistics(repo, earnings.NewEngine(0.21))

	s, err := uc.Execute(context.Background(), StatisticsInput{UserID: 7})
	require.NoError(t, err)
	assert.InDelta(t, 60.0, s.TotalEarnings, 1e-9)
}

func TestStatisticsPassesFilterThrough(t *testing.T) {
	spa := models.Spa{ID: 1, Name: "Spa Central"}

	repo := &fakeWorklogRepo{
		links: []models.UserSpa{
			{UserID: 7, SpaID: 1, PricePerHour: 10, IsActive: true},
		},
		sessions: []models.MassageSession{
			{ID: 1, UserID: 7, SpaID: 1, Spa: spa, Date: date(2026, 2, 1), Hours: 1},
			{ID: 2, UserID: 7, SpaID: 1, Spa: spa, Date: date(2026, 2, 15), Hours: 2},
			{ID: 3, UserID: 7, SpaID: 1, Spa: spa, Date: date(2026, 3, 1), Hours: 4},
		},
	}
	uc := NewStatistics(repo, earnings.NewEngine(0.21))

	from := date(2026, 2, 10)
	to := date(2026, 2, 28)

	s, err := uc.Execute(context.Background(), StatisticsInput{
		UserID: 7,
		Filter: domain.SessionFilter{DateFrom: &from, DateTo: &to},
	})
	require.NoError(t, err)

	assert.Equal(t, &from, repo.lastFilter.DateFrom)
	assert.Equal(t, &to, repo.lastFilter.DateTo)
	assert.Equal(t, 1, s.TotalSessions)
	assert.InDelta(t, 20.0, s.TotalEarnings, 1e-9)
}

// ======================================================
// LIST SESSIONS
// ======================================================

func TestListSessionsComputesRowMoney(t *testing.T) {
	spaA := models.Spa{ID: 1, Name: "SpaA"}
	spaB := models.Spa{ID: 2, Name: "SpaB"}

	repo := &fakeWorklogRepo{
		links: []models.UserSpa{
			{UserID: 7, SpaID: 1, PricePerHour: 20, IsActive: true},
		},
		sessions: []models.MassageSession{
			{ID: 1, UserID: 7, SpaID: 1, Spa: spaA, Date: date(2026, 3, 9), Hours: 3},
			{ID: 2, UserID: 7, SpaID: 2, Spa: spaB, Date: date(2026, 3, 10), Hours: 2},
		},
	}
	uc := NewListSessions(repo, earnings.NewEngine(0.21))

	rows, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "SpaA", rows[0].SpaName)
	assert.InDelta(t, 20.0, rows[0].PricePerHour, 1e-9)
	assert.InDelta(t, 60.0, rows[0].Money.Total, 1e-9)
	assert.InDelta(t, 12.6, rows[0].Money.TaxAmount, 1e-9)
	assert.InDelta(t, 47.4, rows[0].Money.NetAmount, 1e-9)

	// no rate-link: the row lists at zero instead of failing
	assert.Zero(t, rows[1].PricePerHour)
	assert.Zero(t, rows[1].Money.Total)
}
