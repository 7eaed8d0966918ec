package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/motoserve/garage-invoice-service/internal/domain"
	"github.com/motoserve/garage-invoice-service/internal/pdf"
	"github.com/motoserve/garage-invoice-service/internal/repository"
	"github.com/motoserve/garage-invoice-service/internal/share"
)

// InvoiceServiceError represents an error that occurred within the invoice
// service.
type InvoiceServiceError struct {
	Op  string
	Err error
}

func (e *InvoiceServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap returns the underlying error
func (e *InvoiceServiceError) Unwrap() error {
	return e.Err
}

// ErrNotFound indicates an invoice ID absent from the collection
var ErrNotFound = fmt.Errorf("invoice not found")

// ErrMissingPhone indicates a share attempt for an invoice without a
// customer phone number.
var ErrMissingPhone = fmt.Errorf("customer phone number is required to share")

// ErrNoPendingDelete indicates a delete confirmation without a prior request
var ErrNoPendingDelete = fmt.Errorf("no delete is pending confirmation")

// Notifier receives user-visible notifications. Implementations must not
// block; a notification is fire-and-forget.
type Notifier interface {
	Success(message string)
	Failure(message string)
}

// Navigator receives edit-navigation handoffs. The service never follows
// the navigation itself.
type Navigator interface {
	NavigateToEdit(invoiceID string)
}

// Saver persists a rendered document on the client side of the export flow
type Saver interface {
	Save(fileName string, content []byte) error
}

// ShareResult reports how a share attempt concluded. WaLink is only set
// when the native share target was unavailable and the message-link
// fallback applies.
type ShareResult struct {
	Outcome share.Outcome
	WaLink  string
}

// InvoiceService owns the invoice collection and its filtered view. It
// defines the interface for all list operations: loading, filtering,
// two-step deletion, PDF export and sharing.
type InvoiceService interface {
	// Load reads the whole collection from the repository and resets the
	// filtered view to it.
	Load(ctx context.Context) error

	// Invoices returns a copy of the current filtered view
	Invoices() []domain.Invoice

	// GetByID returns the invoice with the given ID from the master
	// collection, or ErrNotFound.
	GetByID(invoiceID string) (*domain.Invoice, error)

	// Create appends a new invoice to the collection and persists it. A
	// blank ID is assigned a fresh one.
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)

	// Update replaces the invoice with a matching ID and persists the
	// collection. Returns ErrNotFound when no invoice matches.
	Update(ctx context.Context, inv *domain.Invoice) error

	// SetVehicleFilter updates the vehicle-number substring criterion and
	// recomputes the filtered view.
	SetVehicleFilter(substring string)

	// SetDateRange updates the date-range criterion and recomputes the
	// filtered view. The range is only active when both bounds are set.
	SetDateRange(from, to *time.Time)

	// ResetFilters clears all criteria; the view becomes the master
	// collection again.
	ResetFilters()

	// Criteria returns the active filter criteria
	Criteria() domain.FilterCriteria

	// EditTarget hands the invoice ID to the navigation collaborator
	EditTarget(invoiceID string)

	// RequestDelete marks an invoice as pending deletion. Nothing is
	// removed until ConfirmDelete.
	RequestDelete(invoiceID string)

	// PendingDelete returns the ID awaiting confirmation, or "" when none
	PendingDelete() string

	// ConfirmDelete removes the pending invoice, persists the collection
	// whole and recomputes the view. Confirming an ID that is no longer
	// present is an idempotent success.
	ConfirmDelete(ctx context.Context) error

	// CancelDelete clears the pending deletion without mutating anything
	CancelDelete()

	// Export renders one invoice to PDF, hands it to the saver and
	// returns the file name and document bytes for download. State is
	// never mutated.
	Export(ctx context.Context, invoiceID string) (string, []byte, error)

	// ExportAll renders every invoice in the filtered view sequentially,
	// one document fully built and saved before the next begins. Returns
	// the saved file names.
	ExportAll(ctx context.Context) ([]string, error)

	// Share renders the invoice and attempts to hand it to the share
	// collaborator. Requires a customer phone number. A user cancellation
	// is a silent no-op, not an error.
	Share(ctx context.Context, invoiceID string) (*ShareResult, error)
}

// InvoiceServiceImpl implements the InvoiceService interface
type InvoiceServiceImpl struct {
	repo     repository.InvoiceRepository
	renderer pdf.Renderer
	sharer   share.Sharer
	notifier Notifier
	nav      Navigator
	saver    Saver
	currency string

	// mu guards the collection state below; gin handlers call into the
	// service concurrently even though each operation is a single
	// read-whole/modify/write-whole step.
	mu            sync.Mutex
	master        []domain.Invoice
	view          []domain.Invoice
	criteria      domain.FilterCriteria
	pendingDelete string
}

// NewInvoiceService creates a new invoice list service
func NewInvoiceService(
	repo repository.InvoiceRepository,
	renderer pdf.Renderer,
	sharer share.Sharer,
	notifier Notifier,
	nav Navigator,
	saver Saver,
	currency string,
) InvoiceService {
	return &InvoiceServiceImpl{
		repo:     repo,
		renderer: renderer,
		sharer:   sharer,
		notifier: notifier,
		nav:      nav,
		saver:    saver,
		currency: currency,
		master:   []domain.Invoice{},
		view:     []domain.Invoice{},
	}
}

// Load reads the whole collection from the repository
func (s *InvoiceServiceImpl) Load(ctx context.Context) error {
	invoices, err := s.repo.Load(ctx)
	if err != nil {
		return &InvoiceServiceError{Op: "load", Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.master = invoices
	s.refilter()
	return nil
}

// refilter recomputes the filtered view from the master collection and the
// active criteria. Idempotent: unchanged inputs always produce an identical
// view.
func (s *InvoiceServiceImpl) refilter() {
	s.view = domain.FilterInvoices(s.master, s.criteria)
}

// Invoices returns a copy of the current filtered view
func (s *InvoiceServiceImpl) Invoices() []domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Invoice, len(s.view))
	copy(out, s.view)
	return out
}

// GetByID returns the invoice with the given ID from the master collection
func (s *InvoiceServiceImpl) GetByID(invoiceID string) (*domain.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findByID(invoiceID)
}

// findByID looks up an invoice in the master collection; callers hold mu
func (s *InvoiceServiceImpl) findByID(invoiceID string) (*domain.Invoice, error) {
	for i := range s.master {
		if s.master[i].ID == invoiceID {
			inv := s.master[i]
			return &inv, nil
		}
	}
	return nil, &InvoiceServiceError{Op: "get_invoice", Err: fmt.Errorf("%w: %s", ErrNotFound, invoiceID)}
}

// Create appends a new invoice and persists the collection whole
func (s *InvoiceServiceImpl) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(append([]domain.Invoice{}, s.master...), *inv)
	if err := s.repo.SaveAll(ctx, next); err != nil {
		return nil, &InvoiceServiceError{Op: "create_invoice", Err: err}
	}

	s.master = next
	s.refilter()
	return inv, nil
}

// Update replaces the invoice with a matching ID and persists the collection
func (s *InvoiceServiceImpl) Update(ctx context.Context, inv *domain.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Invoice, len(s.master))
	copy(next, s.master)

	found := false
	for i := range next {
		if next[i].ID == inv.ID {
			next[i] = *inv
			found = true
			break
		}
	}
	if !found {
		return &InvoiceServiceError{Op: "update_invoice", Err: fmt.Errorf("%w: %s", ErrNotFound, inv.ID)}
	}

	if err := s.repo.SaveAll(ctx, next); err != nil {
		return &InvoiceServiceError{Op: "update_invoice", Err: err}
	}

	s.master = next
	s.refilter()
	return nil
}

// SetVehicleFilter updates the vehicle-number substring criterion
func (s *InvoiceServiceImpl) SetVehicleFilter(substring string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.VehicleSubstring = substring
	s.refilter()
}

// SetDateRange updates the date-range criterion
func (s *InvoiceServiceImpl) SetDateRange(from, to *time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.DateFrom = from
	s.criteria.DateTo = to
	s.refilter()
}

// ResetFilters clears all criteria
func (s *InvoiceServiceImpl) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = domain.FilterCriteria{}
	s.refilter()
}

// Criteria returns the active filter criteria
func (s *InvoiceServiceImpl) Criteria() domain.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// EditTarget hands the invoice ID to the navigation collaborator
func (s *InvoiceServiceImpl) EditTarget(invoiceID string) {
	s.nav.NavigateToEdit(invoiceID)
}

// RequestDelete marks an invoice as pending deletion
func (s *InvoiceServiceImpl) RequestDelete(invoiceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingDelete = invoiceID
}

// PendingDelete returns the ID awaiting confirmation
func (s *InvoiceServiceImpl) PendingDelete() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingDelete
}

// ConfirmDelete removes the pending invoice and persists the collection
func (s *InvoiceServiceImpl) ConfirmDelete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pendingDelete == "" {
		return &InvoiceServiceError{Op: "confirm_delete", Err: ErrNoPendingDelete}
	}
	id := s.pendingDelete
	s.pendingDelete = ""

	// Removing an absent ID leaves the collection equal; that still
	// counts as a successful delete.
	next := domain.RemoveInvoice(s.master, id)
	if err := s.repo.SaveAll(ctx, next); err != nil {
		return &InvoiceServiceError{Op: "confirm_delete", Err: err}
	}

	s.master = next
	s.refilter()
	s.notifier.Success("Invoice deleted")
	return nil
}

// CancelDelete clears the pending deletion
func (s *InvoiceServiceImpl) CancelDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingDelete = ""
}

// Export renders one invoice and hands it to the saver
func (s *InvoiceServiceImpl) Export(ctx context.Context, invoiceID string) (string, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, err := s.findByID(invoiceID)
	if err != nil {
		return "", nil, err
	}

	fileName, content, err := s.exportOne(inv)
	if err != nil {
		return "", nil, &InvoiceServiceError{Op: "export_invoice", Err: err}
	}
	return fileName, content, nil
}

// ExportAll renders every invoice in the filtered view sequentially
func (s *InvoiceServiceImpl) ExportAll(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fileNames := make([]string, 0, len(s.view))
	for i := range s.view {
		fileName, _, err := s.exportOne(&s.view[i])
		if err != nil {
			return fileNames, &InvoiceServiceError{Op: "export_all", Err: err}
		}
		fileNames = append(fileNames, fileName)
	}

	s.notifier.Success(fmt.Sprintf("Exported %d invoices", len(fileNames)))
	return fileNames, nil
}

func (s *InvoiceServiceImpl) exportOne(inv *domain.Invoice) (string, []byte, error) {
	content, err := s.renderer.Render(inv)
	if err != nil {
		return "", nil, err
	}

	fileName := pdf.FileName(inv)
	if err := s.saver.Save(fileName, content); err != nil {
		return "", nil, err
	}
	return fileName, content, nil
}

// Share renders the invoice and attempts to hand it to the share target
func (s *InvoiceServiceImpl) Share(ctx context.Context, invoiceID string) (*ShareResult, error) {
	s.mu.Lock()
	inv, err := s.findByID(invoiceID)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if inv.CustomerPhone == "" {
		s.notifier.Failure("Customer phone number is missing")
		return nil, &InvoiceServiceError{Op: "share_invoice", Err: ErrMissingPhone}
	}

	content, err := s.renderer.Render(inv)
	if err != nil {
		return nil, &InvoiceServiceError{Op: "share_invoice", Err: err}
	}

	summary := pdf.SummaryText(inv, s.currency)
	outcome, shareErr := s.sharer.Share(ctx, share.Request{
		Title: "Service Invoice " + inv.ID,
		Text:  summary,
		Phone: inv.CustomerPhone,
		Attachment: &share.Attachment{
			FileName: pdf.FileName(inv),
			Content:  content,
		},
	})

	switch outcome {
	case share.OutcomeSucceeded:
		return &ShareResult{Outcome: outcome}, nil
	case share.OutcomeCancelled:
		// User closed the share target; nothing to report.
		return &ShareResult{Outcome: outcome}, nil
	case share.OutcomeUnavailable:
		return &ShareResult{
			Outcome: outcome,
			WaLink:  share.WhatsAppLink(inv.CustomerPhone, summary),
		}, nil
	default:
		log.Printf("Share failed for invoice %s: %v", inv.ID, shareErr)
		s.notifier.Failure("Could not share invoice")
		return nil, &InvoiceServiceError{Op: "share_invoice", Err: shareErr}
	}
}
