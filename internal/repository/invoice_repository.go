package repository

import (
	"context"
	"fmt"

	"github.com/motoserve/garage-invoice-service/internal/domain"
)

// RepositoryError represents an error that occurred within a repository
type RepositoryError struct {
	// Op is the operation that failed
	Op string

	// Err is the underlying error
	Err error
}

// Error returns a string representation of the error
func (e *RepositoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// InvoiceRepository defines the interface for invoice collection storage.
// The collection is persisted as one flat blob under a single store key and
// always read and written whole; there is no partial update.
type InvoiceRepository interface {
	// Load reads the entire invoice collection. A missing blob is
	// equivalent to an empty collection, not an error.
	Load(ctx context.Context) ([]domain.Invoice, error)

	// SaveAll replaces the entire persisted collection
	SaveAll(ctx context.Context, invoices []domain.Invoice) error
}
