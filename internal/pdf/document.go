package pdf

import (
	"fmt"
	"strings"

	"github.com/motoserve/garage-invoice-service/internal/domain"
)

// DocumentLine is one printable label/value pair of an invoice document
type DocumentLine struct {
	Label string
	Value string
}

// Document is the flat, ordered representation of an invoice handed to a
// renderer. Header lines come first, then the numbered service lines, then
// the total line. Building a Document has no side effects.
type Document struct {
	Title        string
	HeaderLines  []DocumentLine
	ServiceLines []string
	TotalLine    string
}

// ToDocument maps an invoice to its printable document representation.
// The line order is fixed: invoice number, date, customer, phone, vehicle
// model, vehicle number, services, total.
func ToDocument(inv *domain.Invoice, currency string) Document {
	doc := Document{
		Title: "Service Invoice",
		HeaderLines: []DocumentLine{
			{Label: "Invoice No", Value: inv.ID},
			{Label: "Date", Value: inv.Date.Format()},
			{Label: "Customer", Value: inv.CustomerName},
			{Label: "Phone", Value: inv.CustomerPhone},
			{Label: "Vehicle Model", Value: inv.VehicleModel},
			{Label: "Vehicle Number", Value: inv.VehicleNumber},
		},
	}

	for i, item := range inv.Services {
		doc.ServiceLines = append(doc.ServiceLines,
			fmt.Sprintf("%d. %s - %s%.2f", i+1, item.Description, currency, item.Amount))
	}
	doc.TotalLine = fmt.Sprintf("Total: %s%.2f", currency, inv.Total)

	return doc
}

// FileName returns the download file name for an invoice document
func FileName(inv *domain.Invoice) string {
	number := strings.ReplaceAll(inv.VehicleNumber, " ", "")
	if number == "" {
		number = "invoice"
	}
	return fmt.Sprintf("invoice-%s-%s.pdf", number, inv.ID)
}

// SummaryText returns the short plain-text summary used when sharing an
// invoice as a message.
func SummaryText(inv *domain.Invoice, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Service Invoice %s\n", inv.ID)
	fmt.Fprintf(&b, "Date: %s\n", inv.Date.Format())
	fmt.Fprintf(&b, "Vehicle: %s (%s)\n", inv.VehicleModel, inv.VehicleNumber)
	fmt.Fprintf(&b, "Total: %s%.2f", currency, inv.Total)
	return b.String()
}
