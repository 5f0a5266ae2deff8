package earnings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func TestSummarizeSkipsSessionsWithoutRateLink(t *testing.T) {
	e := NewEngine(0.21)

	// worker has a rate at SpaA only; the SpaB session still counts hours
	entries := []Entry{
		{SpaID: 1, SpaName: "SpaA", Hours: 3},
		{SpaID: 2, SpaName: "SpaB", Hours: 2},
	}
	rates := RateTable{1: 20.0}

	s := e.Summarize(entries, rates)

	assert.Equal(t, 2, s.TotalSessions)
	assert.InDelta(t, 5.0, s.TotalHours, delta)
	assert.InDelta(t, 60.0, s.TotalEarnings, delta)
	assert.InDelta(t, 12.6, s.TaxAmount, delta)
	assert.InDelta(t, 47.4, s.NetEarnings, delta)

	require.Len(t, s.EarningsBySpa, 1)
	assert.InDelta(t, 60.0, s.EarningsBySpa["SpaA"], delta)
}

func TestSummarizeEmptySet(t *testing.T) {
	e := NewEngine(0.21)

	s := e.Summarize(nil, RateTable{1: 20.0})

	assert.Equal(t, 0, s.TotalSessions)
	assert.Zero(t, s.TotalHours)
	assert.Zero(t, s.TotalEarnings)
	assert.Zero(t, s.TaxAmount)
	assert.Zero(t, s.NetEarnings)
	require.NotNil(t, s.EarningsBySpa)
	assert.Empty(t, s.EarningsBySpa)
}

func TestSummarizePerSpaEntriesSumToTotal(t *testing.T) {
	e := NewEngine(0.21)

	entries := []Entry{
		{SpaID: 1, SpaName: "Spa Central", Hours: 2},
		{SpaID: 2, SpaName: "Spa Norte", Hours: 1.5},
		{SpaID: 1, SpaName: "Spa Central", Hours: 4},
		{SpaID: 3, SpaName: "Spa Sur", Hours: 3},
	}
	rates := RateTable{1: 25.0, 2: 18.5}

	s := e.Summarize(entries, rates)

	var bySpaSum float64
	for _, v := range s.EarningsBySpa {
		bySpaSum += v
	}
	assert.InDelta(t, s.TotalEarnings, bySpaSum, delta)

	// Spa Sur has no rate-link, so it never shows up
	_, ok := s.EarningsBySpa["Spa Sur"]
	assert.False(t, ok)
}

func TestTaxAndNetInvariant(t *testing.T) {
	e := NewEngine(0.21)

	tests := []struct {
		name    string
		entries []Entry
		rates   RateTable
	}{
		{"empty", nil, nil},
		{"single", []Entry{{SpaID: 1, SpaName: "A", Hours: 7.25}}, RateTable{1: 33.0}},
		{"mixed", []Entry{
			{SpaID: 1, SpaName: "A", Hours: 1},
			{SpaID: 2, SpaName: "B", Hours: 2},
		}, RateTable{2: 40.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := e.Summarize(tt.entries, tt.rates)
			assert.InDelta(t, s.TotalEarnings*0.21, s.TaxAmount, delta)
			assert.InDelta(t, s.TotalEarnings-s.TaxAmount, s.NetEarnings, delta)
		})
	}
}

func TestRowMatchesAggregate(t *testing.T) {
	e := NewEngine(0.21)

	entries := []Entry{
		{SpaID: 1, SpaName: "A", Hours: 3},
		{SpaID: 1, SpaName: "A", Hours: 2.5},
		{SpaID: 2, SpaName: "B", Hours: 4},
	}
	rates := RateTable{1: 20.0, 2: 35.0}

	var rowSum float64
	for _, en := range entries {
		rowSum += e.Row(en.Hours, rates[en.SpaID]).Total
	}

	s := e.Summarize(entries, rates)
	assert.InDelta(t, s.TotalEarnings, rowSum, delta)
}

func TestRowBreakdown(t *testing.T) {
	e := NewEngine(0.21)

	b := e.Row(3, 20.0)

	assert.InDelta(t, 60.0, b.Total, delta)
	assert.InDelta(t, 12.6, b.TaxAmount, delta)
	assert.InDelta(t, 47.4, b.NetAmount, delta)
}

func TestNegativeHoursPassThrough(t *testing.T) {
	// the engine does no bounds checking, validation lives at the boundary
	e := NewEngine(0.21)

	s := e.Summarize(
		[]Entry{{SpaID: 1, SpaName: "A", Hours: -2}},
		RateTable{1: 10.0},
	)

	assert.InDelta(t, -2.0, s.TotalHours, delta)
	assert.InDelta(t, -20.0, s.TotalEarnings, delta)
}
