package finbook

import (
	"math"
	"sort"
)

// TypeTotal aggregates the positions of one investment type.
type TypeTotal struct {
	Type     InvestmentType
	Invested Money
	Current  Money
	Gain     Money
	Count    int
}

// PortfolioReport is the valuation of all investment positions: totals,
// per-type aggregation and positions ranked by relative return.
type PortfolioReport struct {
	TotalInvested Money
	TotalCurrent  Money
	TotalGain     Money
	GainPercent   Percent
	Count         int
	ByType        []TypeTotal
	Performers    []Investment // best relative return first
}

// NewPortfolioReport values the book's investments at their latest manual
// valuation. The zero InvestmentType covers the whole portfolio.
func NewPortfolioReport(book *Book, typ InvestmentType) *PortfolioReport {
	cur := book.Currency()
	report := &PortfolioReport{
		TotalInvested: M(0, cur),
		TotalCurrent:  M(0, cur),
	}

	byType := make(map[InvestmentType]*TypeTotal)
	for inv := range book.Investments(typ) {
		report.Count++
		report.TotalInvested = report.TotalInvested.Add(inv.Initial)
		report.TotalCurrent = report.TotalCurrent.Add(inv.Current)
		report.Performers = append(report.Performers, inv)

		t, ok := byType[inv.Type]
		if !ok {
			t = &TypeTotal{Type: inv.Type, Invested: M(0, cur), Current: M(0, cur)}
			byType[inv.Type] = t
		}
		t.Count++
		t.Invested = t.Invested.Add(inv.Initial)
		t.Current = t.Current.Add(inv.Current)
	}

	report.TotalGain = report.TotalCurrent.Sub(report.TotalInvested)
	report.GainPercent = report.TotalGain.PercentOf(report.TotalInvested)

	for _, t := range byType {
		t.Gain = t.Current.Sub(t.Invested)
		report.ByType = append(report.ByType, *t)
	}
	sort.Slice(report.ByType, func(i, j int) bool {
		a, b := report.ByType[i], report.ByType[j]
		if !a.Current.Equal(b.Current) {
			return a.Current.GreaterThan(b.Current)
		}
		return a.Type < b.Type
	})
	sort.SliceStable(report.Performers, func(i, j int) bool {
		return report.Performers[i].GainPercent() > report.Performers[j].GainPercent()
	})
	return report
}

// InvestmentPerformance details the return of a single position, including
// its annualized rate when the holding period allows one.
type InvestmentPerformance struct {
	Investment  Investment
	Gain        Money
	GainPercent Percent
	HoldingDays int
	Annualized  Percent
	HasRate     bool // false when the holding period is too short to annualize
}

// NewInvestmentPerformance computes the performance of a position as of a
// given date. The annualized rate compounds the total return over the holding
// period; positions held less than a day carry no rate.
func NewInvestmentPerformance(inv Investment, asof Date) InvestmentPerformance {
	perf := InvestmentPerformance{
		Investment:  inv,
		Gain:        inv.Gain(),
		GainPercent: inv.GainPercent(),
		HoldingDays: asof.DaysSince(inv.PurchaseDate),
	}
	if perf.HoldingDays < 1 {
		return perf
	}
	ratio := inv.Current.AsFloat() / inv.Initial.AsFloat()
	if ratio <= 0 {
		return perf
	}
	rate := math.Pow(ratio, 365.25/float64(perf.HoldingDays)) - 1
	perf.Annualized = Percent(rate * 100)
	perf.HasRate = true
	return perf
}
