package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/motoserve/garage-invoice-service/internal/domain"
)

// FileRepository implements InvoiceRepository using a single JSON blob file
// on the local filesystem. The whole collection lives in one file; every
// save rewrites it completely.
type FileRepository struct {
	blobPath string
	mutex    sync.RWMutex
}

// NewFileRepository creates a new file-backed invoice repository. The blob
// file itself is created lazily on first save.
func NewFileRepository(blobPath string) (*FileRepository, error) {
	if err := os.MkdirAll(filepath.Dir(blobPath), 0755); err != nil {
		return nil, &RepositoryError{
			Op:  "create_repository",
			Err: fmt.Errorf("failed to create blob directory: %w", err),
		}
	}

	return &FileRepository{
		blobPath: blobPath,
	}, nil
}

// Load reads the entire invoice collection from the blob file. A missing
// file means no invoice has ever been saved and yields an empty collection.
func (r *FileRepository) Load(ctx context.Context) ([]domain.Invoice, error) {
	select {
	case <-ctx.Done():
		return nil, &RepositoryError{
			Op:  "load_invoices",
			Err: ctx.Err(),
		}
	default:
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	data, err := os.ReadFile(r.blobPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Invoice{}, nil
		}
		return nil, &RepositoryError{
			Op:  "load_invoices",
			Err: fmt.Errorf("failed to read blob file: %w", err),
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

// SaveAll replaces the blob file with the given collection
func (r *FileRepository) SaveAll(ctx context.Context, invoices []domain.Invoice) error {
	select {
	case <-ctx.Done():
		return &RepositoryError{
			Op:  "save_invoices",
			Err: ctx.Err(),
		}
	default:
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

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

	// Write to a temp file first so a crash mid-write cannot leave a
	// truncated blob behind.
	tmpPath := r.blobPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return &RepositoryError{
			Op:  "save_invoices",
			Err: fmt.Errorf("failed to write blob file: %w", err),
		}
	}
	if err := os.Rename(tmpPath, r.blobPath); err != nil {
		return &RepositoryError{
			Op:  "save_invoices",
			Err: fmt.Errorf("failed to replace blob file: %w", err),
		}
	}

	return nil
}
