package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrUnparsableDate indicates an invoice date string matching none of the
// accepted layouts.
var ErrUnparsableDate = fmt.Errorf("unparsable invoice date")

// invoiceDateLayouts are tried in order by ParseInvoiceDate. RFC3339 covers
// timestamps written by older clients; the date-only layout is the canonical
// form.
var invoiceDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseInvoiceDate parses an invoice date string. It is the single parse
// function for the whole service; callers must not parse invoice dates any
// other way.
func ParseInvoiceDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrUnparsableDate)
	}
	for _, layout := range invoiceDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsableDate, s)
}

// InvoiceDate is a custom type for invoice date strings. It keeps the raw
// string so a record with a malformed date still round-trips through the
// store unchanged; validity is only decided when a caller asks for the
// parsed time.
type InvoiceDate struct {
	Raw string
}

// NewInvoiceDate creates an InvoiceDate from a calendar date
func NewInvoiceDate(t time.Time) InvoiceDate {
	return InvoiceDate{Raw: t.Format("2006-01-02")}
}

// Parsed returns the parsed calendar date, or an error when the raw string
// is unparsable.
func (d InvoiceDate) Parsed() (time.Time, error) {
	return ParseInvoiceDate(d.Raw)
}

// Format renders the date for display. A malformed raw string is shown
// as-is rather than hidden.
func (d InvoiceDate) Format() string {
	t, err := d.Parsed()
	if err != nil {
		return d.Raw
	}
	return t.Format("02 Jan 2006")
}

// UnmarshalJSON implements custom unmarshaling for invoice date strings
func (d *InvoiceDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	d.Raw = s
	return nil
}

// MarshalJSON implements custom marshaling for invoice date strings
func (d InvoiceDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Raw)
}

// ServiceItem represents a single service line on an invoice. Items have no
// identity of their own; they live and die with their invoice.
type ServiceItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Invoice represents one billing record for a vehicle service visit.
// Total is caller-supplied and trusted; this layer never recomputes it
// behind the caller's back.
type Invoice struct {
	ID            string        `json:"id"`
	Date          InvoiceDate   `json:"date"`
	CustomerName  string        `json:"customerName"`
	CustomerPhone string        `json:"customerPhone,omitempty"`
	VehicleModel  string        `json:"vehicleModel"`
	VehicleNumber string        `json:"vehicleNumber"`
	Services      []ServiceItem `json:"services"`
	Total         float64       `json:"total"`
}

// NewInvoice creates an invoice with an empty service list
func NewInvoice() *Invoice {
	return &Invoice{
		Services: make([]ServiceItem, 0),
	}
}

// AddService appends a service line to the invoice
func (i *Invoice) AddService(item ServiceItem) {
	i.Services = append(i.Services, item)
}

// ServicesTotal sums the invoice's service line amounts
func (i *Invoice) ServicesTotal() float64 {
	var total float64
	for _, item := range i.Services {
		total += item.Amount
	}
	return total
}
