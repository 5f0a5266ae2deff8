package earnings

// ===============================
// Statistics Engine
// ===============================

// Engine turns one worker's sessions plus their rate-links into earnings
// aggregates. It is filter-agnostic: callers restrict the session set before
// handing it over. Sessions at a spa the worker has no rate-link for earn
// nothing, but their hours still count.
type Engine struct {
	taxRate float64
}

func NewEngine(taxRate float64) *Engine {
	return &Engine{taxRate: taxRate}
}

func (e *Engine) TaxRate() float64 {
	return e.taxRate
}

// Entry is the slice of a session the engine cares about.
type Entry struct {
	SpaID   uint
	SpaName string
	Hours   float64
}

// RateTable maps spa id to the worker's hourly price there.
type RateTable map[uint]float64

type Summary struct {
	TotalSessions int                `json:"total_sessions"`
	TotalHours    float64            `json:"total_hours"`
	TotalEarnings float64            `json:"total_earnings"`
	TaxAmount     float64            `json:"tax_amount"`
	NetEarnings   float64            `json:"net_earnings"`
	EarningsBySpa map[string]float64 `json:"earnings_by_spa"`
}

// Breakdown is the per-session variant of Summary.
type Breakdown struct {
	Total     float64 `json:"total"`
	TaxAmount float64 `json:"tax_amount"`
	NetAmount float64 `json:"net_amount"`
}

// Row computes one session's gross, tax and net. Summarize adds the same
// products, so row totals always sum to the aggregate.
func (e *Engine) Row(hours, pricePerHour float64) Breakdown {
	total := hours * pricePerHour
	tax := total * e.taxRate

	return Breakdown{
		Total:     total,
		TaxAmount: tax,
		NetAmount: total - tax,
	}
}

func (e *Engine) Summarize(entries []Entry, rates RateTable) Summary {
	s := Summary{
		EarningsBySpa: map[string]float64{},
	}

	for _, en := range entries {
		s.TotalSessions++
		s.TotalHours += en.Hours

		rate, ok := rates[en.SpaID]
		if !ok {
			// no rate-link: silent skip, not an error
			continue
		}

		amount := en.Hours * rate
		s.TotalEarnings += amount
		s.EarningsBySpa[en.SpaName] += amount
	}

	s.TaxAmount = s.TotalEarnings * e.taxRate
	s.NetEarnings = s.TotalEarnings - s.TaxAmount

	return s
}
