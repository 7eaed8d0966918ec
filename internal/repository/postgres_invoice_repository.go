package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/motoserve/garage-invoice-service/internal/domain"
)

// PostgresInvoiceRepository implements InvoiceRepository using PostgreSQL as
// a key/value blob store. The whole collection is one JSONB value in a
// single row keyed by storeKey; reads and writes always cover the entire
// blob, never individual invoices. This keeps the storage contract identical
// to the file-backed repository.
type PostgresInvoiceRepository struct {
	db       *pgxpool.Pool
	storeKey string
}

// NewPostgresInvoiceRepository creates a new PostgreSQL invoice repository
// and ensures the blob table exists.
func NewPostgresInvoiceRepository(ctx context.Context, db *pgxpool.Pool, storeKey string) (*PostgresInvoiceRepository, error) {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS invoice_blobs (
			store_key TEXT PRIMARY KEY,
			blob JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return nil, &RepositoryError{
			Op:  "create_repository",
			Err: fmt.Errorf("failed to create blob table: %w", err),
		}
	}

	return &PostgresInvoiceRepository{
		db:       db,
		storeKey: storeKey,
	}, nil
}

// Load reads the entire invoice collection blob. A missing row means
// nothing has ever been saved under this key and yields an empty collection.
func (r *PostgresInvoiceRepository) Load(ctx context.Context) ([]domain.Invoice, error) {
	var data []byte
	err := r.db.QueryRow(ctx, `
		SELECT blob FROM invoice_blobs WHERE store_key = $1
	`, r.storeKey).Scan(&data)
	if err != nil {
		if err == pgx.ErrNoRows {
			return []domain.Invoice{}, nil
		}
		return nil, &RepositoryError{
			Op:  "load_invoices",
			Err: fmt.Errorf("failed to read blob row: %w", err),
		}
	}

	var invoices []domain.Invoice
	if err := json.Unmarshal(data, &invoices); err != nil {
		return nil, &RepositoryError{
			Op:  "load_invoices",
			Err: fmt.Errorf("failed to decode blob: %w", err),
		}
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}

	return invoices, nil
}

// SaveAll replaces the blob row with the given collection
func (r *PostgresInvoiceRepository) SaveAll(ctx context.Context, invoices []domain.Invoice) error {
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	data, err := json.Marshal(invoices)
	if err != nil {
		return &RepositoryError{
			Op:  "save_invoices",
			Err: fmt.Errorf("failed to encode collection: %w", err),
		}
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO invoice_blobs (store_key, blob, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (store_key) DO UPDATE SET blob = EXCLUDED.blob, updated_at = now()
	`, r.storeKey, data)
	if err != nil {
		return &RepositoryError{
			Op:  "save_invoices",
			Err: fmt.Errorf("failed to write blob row: %w", err),
		}
	}

	return nil
}
