package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/motoserve/garage-invoice-service/internal/domain"
)

// Renderer produces a downloadable/shareable byte representation of an
// invoice document.
type Renderer interface {
	Render(inv *domain.Invoice) ([]byte, error)
}

// Generator renders invoice documents as A4 PDF files using gofpdf
type Generator struct {
	currency string
}

// NewGenerator creates a PDF generator using the given currency symbol for
// amounts.
func NewGenerator(currency string) *Generator {
	return &Generator{currency: currency}
}

// Currency returns the generator's currency symbol
func (g *Generator) Currency() string {
	return g.currency
}

// Render lays out the invoice document on an A4 page and returns the PDF
// bytes.
func (g *Generator) Render(inv *domain.Invoice) ([]byte, error) {
	doc := ToDocument(inv, g.currency)

	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()

	p.SetFont("Arial", "B", 16)
	p.Cell(0, 12, doc.Title)
	p.Ln(16)

	p.SetFont("Arial", "", 11)
	for _, line := range doc.HeaderLines {
		p.SetFont("Arial", "B", 11)
		p.Cell(40, 8, line.Label)
		p.SetFont("Arial", "", 11)
		p.Cell(0, 8, line.Value)
		p.Ln(8)
	}
	p.Ln(4)

	p.SetFont("Arial", "B", 12)
	p.Cell(0, 10, "Services")
	p.Ln(10)

	p.SetFont("Arial", "", 11)
	for _, line := range doc.ServiceLines {
		p.Cell(0, 8, line)
		p.Ln(8)
	}
	p.Ln(4)

	p.SetFont("Arial", "B", 12)
	p.Cell(0, 10, doc.TotalLine)

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice %s: %w", inv.ID, err)
	}

	return buf.Bytes(), nil
}
