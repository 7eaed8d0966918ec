package domain

import (
	"strings"
	"time"
)

// FilterCriteria represents the active filters for querying invoices.
// A nil DateFrom/DateTo means the bound is absent; the date criterion is
// only active when both bounds are set.
type FilterCriteria struct {
	VehicleSubstring string
	DateFrom         *time.Time
	DateTo           *time.Time
}

// IsEmpty reports whether no criterion is active
func (c FilterCriteria) IsEmpty() bool {
	return strings.TrimSpace(c.VehicleSubstring) == "" && !c.dateRangeActive()
}

func (c FilterCriteria) dateRangeActive() bool {
	return c.DateFrom != nil && c.DateTo != nil
}

// MatchesVehicle reports whether the invoice's vehicle number contains the
// criteria substring, case-insensitively. An empty or whitespace-only
// substring matches everything.
func (c FilterCriteria) MatchesVehicle(inv *Invoice) bool {
	needle := strings.TrimSpace(c.VehicleSubstring)
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(inv.VehicleNumber), strings.ToLower(needle))
}

// MatchesDateRange reports whether the invoice's date lies in the inclusive
// range [DateFrom, DateTo]. With either bound absent the criterion is
// inactive and everything matches. An invoice whose date does not parse is
// excluded while the range is active; the filter itself never fails.
func (c FilterCriteria) MatchesDateRange(inv *Invoice) bool {
	if !c.dateRangeActive() {
		return true
	}
	d, err := inv.Date.Parsed()
	if err != nil {
		return false
	}
	if d.Before(*c.DateFrom) {
		return false
	}
	return !d.After(*c.DateTo)
}

// FilterInvoices computes the filtered view of an invoice collection. It is
// pure and order-preserving: the result is a stable subsequence of the
// input, and filtering with empty criteria returns the input unmodified.
// Active criteria compose as a logical AND.
func FilterInvoices(invoices []Invoice, criteria FilterCriteria) []Invoice {
	if criteria.IsEmpty() {
		return invoices
	}
	filtered := make([]Invoice, 0, len(invoices))
	for i := range invoices {
		inv := &invoices[i]
		if !criteria.MatchesVehicle(inv) {
			continue
		}
		if !criteria.MatchesDateRange(inv) {
			continue
		}
		filtered = append(filtered, *inv)
	}
	return filtered
}

// RemoveInvoice returns the collection without the invoice whose ID matches,
// other elements unchanged in order and content. Removing an absent ID
// returns an equal collection; callers treat that as an idempotent success.
func RemoveInvoice(invoices []Invoice, id string) []Invoice {
	remaining := make([]Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.ID != id {
			remaining = append(remaining, inv)
		}
	}
	return remaining
}
