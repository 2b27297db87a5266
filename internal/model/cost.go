package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PaymentFrequency controls how an administrative cost is expanded into
// dated payments.
type PaymentFrequency string

const (
	FrequencyMonthly   PaymentFrequency = "monthly"
	FrequencyQuarterly PaymentFrequency = "quarterly"
	FrequencyYearly    PaymentFrequency = "yearly"
)

// ParseFrequency maps a user-supplied string to a PaymentFrequency.
func ParseFrequency(s string) (PaymentFrequency, error) {
	switch PaymentFrequency(strings.ToLower(strings.TrimSpace(s))) {
	case FrequencyMonthly:
		return FrequencyMonthly, nil
	case FrequencyQuarterly:
		return FrequencyQuarterly, nil
	case FrequencyYearly:
		return FrequencyYearly, nil
	}
	return "", fmt.Errorf("unknown payment frequency %q (want monthly, quarterly, or yearly)", s)
}

// LaborCostRecord is a constant monthly cost rate active over a closed date
// interval, e.g. a team's payroll for a year.
type LaborCostRecord struct {
	ID          string
	Category    string // selling, manufacturing, research, management, ...
	Resource    string // person or department label
	MonthlyCost float64
	Start       time.Time
	End         time.Time // inclusive
}

// NewLaborCostRecord validates the interval and returns a record with a
// fresh id.
func NewLaborCostRecord(category, resource string, monthlyCost float64, start, end time.Time) (LaborCostRecord, error) {
	if err := validateCost(resource, monthlyCost, start, end); err != nil {
		return LaborCostRecord{}, err
	}
	return LaborCostRecord{
		ID:          uuid.NewString(),
		Category:    category,
		Resource:    resource,
		MonthlyCost: monthlyCost,
		Start:       start,
		End:         end,
	}, nil
}

// AdminCostRecord is a recurring administrative expense with a payment
// frequency policy.
type AdminCostRecord struct {
	ID          string
	Category    string // rent, utilities, travel, ...
	Item        string
	MonthlyCost float64
	Start       time.Time
	End         time.Time // inclusive
	Frequency   PaymentFrequency
}

// NewAdminCostRecord validates the interval and frequency and returns a
// record with a fresh id.
func NewAdminCostRecord(category, item string, monthlyCost float64, start, end time.Time, freq PaymentFrequency) (AdminCostRecord, error) {
	if err := validateCost(item, monthlyCost, start, end); err != nil {
		return AdminCostRecord{}, err
	}
	switch freq {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
	default:
		return AdminCostRecord{}, fmt.Errorf("cost %q: unknown payment frequency %q", item, freq)
	}
	return AdminCostRecord{
		ID:          uuid.NewString(),
		Category:    category,
		Item:        item,
		MonthlyCost: monthlyCost,
		Start:       start,
		End:         end,
		Frequency:   freq,
	}, nil
}

func validateCost(label string, monthlyCost float64, start, end time.Time) error {
	if strings.TrimSpace(label) == "" {
		return fmt.Errorf("cost record label is required")
	}
	if monthlyCost < 0 {
		return fmt.Errorf("cost %q: monthly cost must not be negative", label)
	}
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("cost %q: start and end dates are required", label)
	}
	if end.Before(start) {
		return fmt.Errorf("cost %q: end date %s before start date %s",
			label, end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	return nil
}

// EntryKind distinguishes the two independent one-off series.
type EntryKind string

const (
	EntryIncome  EntryKind = "income"
	EntryExpense EntryKind = "expense"
)

// OccasionalEntry is a one-off dated cash event outside the recurring
// schedules: a grant, a tax refund, an equipment purchase.
type OccasionalEntry struct {
	ID     string
	Kind   EntryKind
	Label  string
	Amount float64
	Date   time.Time
	Tag    string // free-text type tag
}

// NewOccasionalEntry validates the fields and returns an entry with a
// fresh id.
func NewOccasionalEntry(kind EntryKind, label string, amount float64, date time.Time, tag string) (OccasionalEntry, error) {
	if kind != EntryIncome && kind != EntryExpense {
		return OccasionalEntry{}, fmt.Errorf("unknown entry kind %q", kind)
	}
	if strings.TrimSpace(label) == "" {
		return OccasionalEntry{}, fmt.Errorf("entry label is required")
	}
	if amount < 0 {
		return OccasionalEntry{}, fmt.Errorf("entry %q: amount must not be negative", label)
	}
	if date.IsZero() {
		return OccasionalEntry{}, fmt.Errorf("entry %q: date is required", label)
	}
	return OccasionalEntry{
		ID:     uuid.NewString(),
		Kind:   kind,
		Label:  label,
		Amount: amount,
		Date:   date,
		Tag:    tag,
	}, nil
}
