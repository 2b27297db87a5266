package model

import "time"

// EventKind identifies one of the three payment stages of a project.
type EventKind string

const (
	EventFirstPayment    EventKind = "first_payment"
	EventSecondPayment   EventKind = "second_payment"
	EventWarrantyPayment EventKind = "warranty_payment"
)

// CashFlowEvent is one dated expected payment derived from a project. It is
// recomputed on every forecast pass, never stored.
type CashFlowEvent struct {
	ProjectID    string
	ProjectName  string
	Kind         EventKind
	Date         time.Time
	Month        Month
	Amount       float64
	BusinessLine string
	RatioPct     float64 // the payment ratio that produced the amount
}

// ProjectRevenue holds the per-project computed revenue fields exposed to
// reporting: the decay factor at the configured base date and the expected
// revenue it implies.
type ProjectRevenue struct {
	Project         Project
	MonthsOut       int // calendar months from base date to delivery, clamped at 0
	DecayFactor     float64
	ExpectedRevenue float64
}

// MaterialCost is the derived material spend of one project, recognized one
// month ahead of delivery.
type MaterialCost struct {
	ProjectID    string
	ProjectName  string
	BusinessLine string
	RatioPct     float64
	Amount       float64
	Month        Month
}

// MonthlyCost is one month's share of an expanded labor or administrative
// cost record.
type MonthlyCost struct {
	RecordID string
	Category string
	Label    string
	Month    Month
	Amount   float64
}

// LedgerRow is one month of the aggregated budget: every revenue and cost
// category, zero-filled where the month had no activity, plus the derived
// totals.
type LedgerRow struct {
	Month             Month
	Revenue           float64 // corrected revenue recognized at delivery
	MaterialCost      float64
	LaborCost         float64
	AdminCost         float64
	OccasionalIncome  float64
	OccasionalExpense float64

	TotalRevenue   float64
	TotalExpense   float64
	GrossProfit    float64
	GrossMarginPct float64 // 0 when the month has no revenue
}

// RunwayRow is one month of the cash projection.
type RunwayRow struct {
	Month   Month
	NetFlow float64
	Balance float64 // cumulative, starting from the configured cash balance
}
