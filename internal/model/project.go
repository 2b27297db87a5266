// Package model defines the runcast domain types: pipeline deals, cost
// records, and the derived forecast rows computed from them.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PaymentRatios holds the three payment-stage percentages of a project.
// They should sum to 100; a deviation is a data-quality warning, not an
// error (the generator still emits events with the given ratios).
type PaymentRatios struct {
	First  float64 // due at delivery
	Second float64 // due one month after delivery
	Final  float64 // warranty holdback, due twelve months after delivery
}

// DefaultPaymentRatios is the split applied when a project is created
// without explicit ratios.
var DefaultPaymentRatios = PaymentRatios{First: 50, Second: 40, Final: 10}

// Sum returns the total of the three percentages.
func (r PaymentRatios) Sum() float64 { return r.First + r.Second + r.Final }

// RatioSumTolerance is the allowed deviation, in percentage points, of a
// ratio sum from 100 before a warning is raised.
const RatioSumTolerance = 0.1

// Project is one pipeline deal: a contract expected to close and deliver on
// a known date, discounted by a close-rate estimate.
type Project struct {
	ID             string
	Name           string
	DeliveryDate   time.Time
	ContractAmount float64
	CloseRatePct   float64 // conservative close-rate estimate, 0-100
	BusinessLine   string
	Ratios         PaymentRatios

	// CorrectedRevenue is the figure consumed by every downstream
	// generator. It is initialized to the model-computed expected revenue
	// when the project is created and may be overridden manually; it is
	// never re-derived from the formula afterwards.
	CorrectedRevenue float64
}

// NewProject validates the fields and returns a Project with a fresh id.
// CorrectedRevenue is left at zero; the caller seeds it with the expected
// revenue before the project is first persisted.
func NewProject(name string, delivery time.Time, contract, closeRatePct float64, line string, ratios PaymentRatios) (Project, error) {
	if strings.TrimSpace(name) == "" {
		return Project{}, fmt.Errorf("project name is required")
	}
	if delivery.IsZero() {
		return Project{}, fmt.Errorf("project %q: delivery date is required", name)
	}
	if contract < 0 {
		return Project{}, fmt.Errorf("project %q: contract amount must not be negative", name)
	}
	if closeRatePct < 0 || closeRatePct > 100 {
		return Project{}, fmt.Errorf("project %q: close rate %.1f out of range 0-100", name, closeRatePct)
	}
	for _, p := range []float64{ratios.First, ratios.Second, ratios.Final} {
		if p < 0 || p > 100 {
			return Project{}, fmt.Errorf("project %q: payment ratio %.1f out of range 0-100", name, p)
		}
	}
	return Project{
		ID:             uuid.NewString(),
		Name:           name,
		DeliveryDate:   delivery,
		ContractAmount: contract,
		CloseRatePct:   closeRatePct,
		BusinessLine:   line,
		Ratios:         ratios,
	}, nil
}
