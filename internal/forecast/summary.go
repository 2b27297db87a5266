package forecast

import (
	"sort"

	"github.com/runcastdev/runcast/internal/model"
)

// QuarterSummary aggregates corrected revenue by delivery quarter.
type QuarterSummary struct {
	Quarter       string // "YYYY-Qn"
	Revenue       float64
	Projects      int
	AvgDecay      float64
	ContractTotal float64
	CumulativePct float64 // running share of total corrected revenue
}

// LineSummary aggregates corrected revenue by business line.
type LineSummary struct {
	BusinessLine    string
	Revenue         float64
	Projects        int
	ContractTotal   float64
	ContributionPct float64
}

// Totals holds the portfolio-level indicators.
type Totals struct {
	Projects         int
	ContractTotal    float64
	ExpectedRevenue  float64
	CorrectedRevenue float64
	AvgDecay         float64
	ConversionPct    float64 // corrected revenue over contract total
}

// Summarize rolls the per-project revenue figures up by delivery quarter and
// by business line, and computes the portfolio totals.
func Summarize(revs []model.ProjectRevenue) ([]QuarterSummary, []LineSummary, Totals) {
	quarters := make(map[string]*QuarterSummary)
	lines := make(map[string]*LineSummary)
	var totals Totals

	for _, r := range revs {
		p := r.Project

		q := model.MonthOf(p.DeliveryDate).Quarter()
		qs, ok := quarters[q]
		if !ok {
			qs = &QuarterSummary{Quarter: q}
			quarters[q] = qs
		}
		qs.Revenue += p.CorrectedRevenue
		qs.Projects++
		qs.AvgDecay += r.DecayFactor // sum here, divide below
		qs.ContractTotal += p.ContractAmount

		ls, ok := lines[p.BusinessLine]
		if !ok {
			ls = &LineSummary{BusinessLine: p.BusinessLine}
			lines[p.BusinessLine] = ls
		}
		ls.Revenue += p.CorrectedRevenue
		ls.Projects++
		ls.ContractTotal += p.ContractAmount

		totals.Projects++
		totals.ContractTotal += p.ContractAmount
		totals.ExpectedRevenue += r.ExpectedRevenue
		totals.CorrectedRevenue += p.CorrectedRevenue
		totals.AvgDecay += r.DecayFactor
	}

	if totals.Projects > 0 {
		totals.AvgDecay /= float64(totals.Projects)
	}
	if totals.ContractTotal > 0 {
		totals.ConversionPct = totals.CorrectedRevenue / totals.ContractTotal * 100
	}

	qOut := make([]QuarterSummary, 0, len(quarters))
	for _, qs := range quarters {
		qs.AvgDecay /= float64(qs.Projects)
		qOut = append(qOut, *qs)
	}
	sort.Slice(qOut, func(i, j int) bool { return qOut[i].Quarter < qOut[j].Quarter })
	cumulative := 0.0
	for i := range qOut {
		cumulative += qOut[i].Revenue
		if totals.CorrectedRevenue > 0 {
			qOut[i].CumulativePct = cumulative / totals.CorrectedRevenue * 100
		}
	}

	lOut := make([]LineSummary, 0, len(lines))
	for _, ls := range lines {
		if totals.CorrectedRevenue > 0 {
			ls.ContributionPct = ls.Revenue / totals.CorrectedRevenue * 100
		}
		lOut = append(lOut, *ls)
	}
	sort.Slice(lOut, func(i, j int) bool {
		if lOut[i].Revenue != lOut[j].Revenue {
			return lOut[i].Revenue > lOut[j].Revenue
		}
		return lOut[i].BusinessLine < lOut[j].BusinessLine
	})

	return qOut, lOut, totals
}
