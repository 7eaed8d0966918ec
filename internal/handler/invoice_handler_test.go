package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motoserve/garage-invoice-service/internal/domain"
	"github.com/motoserve/garage-invoice-service/internal/model"
	"github.com/motoserve/garage-invoice-service/internal/service"
	"github.com/motoserve/garage-invoice-service/internal/share"
)

type memoryRepository struct {
	invoices []domain.Invoice
}

func (r *memoryRepository) Load(ctx context.Context) ([]domain.Invoice, error) {
	out := make([]domain.Invoice, len(r.invoices))
	copy(out, r.invoices)
	return out, nil
}

func (r *memoryRepository) SaveAll(ctx context.Context, invoices []domain.Invoice) error {
	r.invoices = make([]domain.Invoice, len(invoices))
	copy(r.invoices, invoices)
	return nil
}

type stubRenderer struct{}

func (stubRenderer) Render(inv *domain.Invoice) ([]byte, error) {
	return []byte("%PDF-stub " + inv.ID), nil
}

type stubNotifier struct{}

func (stubNotifier) Success(string) {}
func (stubNotifier) Failure(string) {}

type stubNavigator struct{}

func (stubNavigator) NavigateToEdit(string) {}

type stubSaver struct{}

func (stubSaver) Save(string, []byte) error { return nil }

func newTestRouter(t *testing.T, invoices []domain.Invoice) (*gin.Engine, *memoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &memoryRepository{invoices: invoices}
	svc := service.NewInvoiceService(
		repo,
		stubRenderer{},
		share.NewUnavailableSharer(),
		stubNotifier{},
		stubNavigator{},
		stubSaver{},
		"Rs.",
	)
	require.NoError(t, svc.Load(context.Background()))

	router := gin.New()
	NewInvoiceHandler(svc).RegisterRoutes(router)
	return router, repo
}

func seedInvoices() []domain.Invoice {
	return []domain.Invoice{
		{
			ID:            "1",
			Date:          domain.InvoiceDate{Raw: "2024-01-05"},
			CustomerName:  "Ramesh",
			CustomerPhone: "+91 98765 43210",
			VehicleNumber: "KA01AB1234",
			Services:      []domain.ServiceItem{{Description: "Oil change", Amount: 500}},
			Total:         500,
		},
		{
			ID:            "2",
			Date:          domain.InvoiceDate{Raw: "2024-02-10"},
			CustomerName:  "Suresh",
			VehicleNumber: "KA02CD5678",
			Services:      []domain.ServiceItem{{Description: "Brake pads", Amount: 800}},
			Total:         800,
		},
	}
}

func doRequest(router *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) model.InvoiceListResponse {
	t.Helper()
	var resp model.InvoiceListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestListInvoicesUnfiltered(t *testing.T) {
	router, _ := newTestRouter(t, seedInvoices())

	w := doRequest(router, http.MethodGet, "/v1/invoices", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeList(t, w)
	assert.Equal(t, 2, resp.Count)
}

func TestListInvoicesVehicleFilter(t *testing.T) {
	router, _ := newTestRouter(t, seedInvoices())

	w := doRequest(router, http.MethodGet, "/v1/invoices?vehicleNumber=ka01", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeList(t, w)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "1", resp.Data[0].ID)
}

func TestListInvoicesDateRangeFilter(t *testing.T) {
	router, _ := newTestRouter(t, seedInvoices())

	w := doRequest(router, http.MethodGet, "/v1/invoices?startDate=2024-02-01&endDate=2024-02-28", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeList(t, w)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "2", resp.Data[0].ID)
}

func TestListInvoicesIncompleteDateRangeRejected(t *testing.T) {
	router, _ := newTestRouter(t, seedInvoices())

	w := doRequest(router, http.MethodGet, "/v1/invoices?startDate=2024-02-01", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListInvoicesInvalidDateRejected(t *testing.T) {
	router, _ := newTestRouter(t, seedInvoices())

	w := doRequest(router, http.MethodGet, "/v1/invoices?startDate=bad&endDate=2024-02-28", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetFiltersEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, seedInvoices())

	// Narrow the view first, then reset.
	doRequest(router, http.MethodGet, "/v1/invoices?vehicleNumber=ka01", nil)
	w := doRequest(router, http.MethodPost, "/v1/invoices/filters/reset", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeList(t, w)
	assert.Equal(t, 2, resp.Count)
}

func TestGetInvoiceByID(t *testing.T) {
	router, _ := newTestRouter(t, seedInvoices())

	w := doRequest(router, http.MethodGet, "/v1/invoices/1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var dto model.InvoiceDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
	assert.Equal(t, "KA01AB1234", dto.VehicleNumber)
}

func TestGetInvoiceByIDNotFound(t *testing.T) {
	router, _ := newTestRouter(t, seedInvoices())

	w := doRequest(router, http.MethodGet, "/v1/invoices/999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateInvoice(t *testing.T) {
	router, repo := newTestRouter(t, seedInvoices())

	body, err := json.Marshal(model.InvoiceDTO{
		Date:          "2024-03-15",
		CustomerName:  "Mahesh",
		VehicleModel:  "City",
		VehicleNumber: "MH12EF9012",
		Services:      []model.ServiceItemDTO{{Description: "Full service", Amount: 2500}},
		Total:         2500,
	})
	require.NoError(t, err)

	w := doRequest(router, http.MethodPost, "/v1/invoices", body)

	require.Equal(t, http.StatusCreated, w.Code)
	var dto model.InvoiceDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
	assert.NotEmpty(t, dto.ID)
	assert.Len(t, repo.invoices, 3)
}

func TestUpdateInvoice(t *testing.T) {
	router, repo := newTestRouter(t, seedInvoices())

	body, err := json.Marshal(model.InvoiceDTO{
		Date:          "2024-01-05",
		CustomerName:  "Rajesh",
		VehicleNumber: "KA01AB1234",
		Total:         600,
	})
	require.NoError(t, err)

	w := doRequest(router, http.MethodPut, "/v1/invoices/1", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Rajesh", repo.invoices[0].CustomerName)
}

func TestUpdateInvoiceNotFound(t *testing.T) {
	router, _ := newTestRouter(t, seedInvoices())

	body, err := json.Marshal(model.InvoiceDTO{CustomerName: "Nobody"})
	require.NoError(t, err)

	w := doRequest(router, http.MethodPut, "/v1/invoices/999", body)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteInvoiceTwoStep(t *testing.T) {
	router, repo := newTestRouter(t, seedInvoices())

	// Step one: request only, nothing removed.
	w := doRequest(router, http.MethodDelete, "/v1/invoices/1", nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	var pending model.DeleteRequestedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
	assert.Equal(t, "1", pending.PendingDelete)
	assert.Len(t, repo.invoices, 2)

	// Step two: confirm removes and persists.
	w = doRequest(router, http.MethodDelete, "/v1/invoices/1?confirm=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, repo.invoices, 1)
	assert.Equal(t, "2", repo.invoices[0].ID)
}

func TestDeleteCancelKeepsInvoice(t *testing.T) {
	router, repo := newTestRouter(t, seedInvoices())

	doRequest(router, http.MethodDelete, "/v1/invoices/1", nil)
	w := doRequest(router, http.MethodPost, "/v1/invoices/1/delete/cancel", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, repo.invoices, 2)
}

func TestDeleteAbsentInvoiceStillSucceeds(t *testing.T) {
	router, repo := newTestRouter(t, seedInvoices())

	w := doRequest(router, http.MethodDelete, "/v1/invoices/999?confirm=true", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, repo.invoices, 2)
}

func TestDownloadInvoicePDF(t *testing.T) {
	router, _ := newTestRouter(t, seedInvoices())

	w := doRequest(router, http.MethodGet, "/v1/invoices/1/pdf", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "invoice-KA01AB1234-1.pdf")
	assert.Equal(t, "%PDF-stub 1", w.Body.String())
}

func TestExportAllEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, seedInvoices())

	w := doRequest(router, http.MethodPost, "/v1/invoices/export", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp model.ExportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Files, 2)
}

func TestShareInvoiceMissingPhone(t *testing.T) {
	router, _ := newTestRouter(t, seedInvoices())

	// Invoice 2 has no phone number.
	w := doRequest(router, http.MethodPost, "/v1/invoices/2/share", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestShareInvoiceFallbackLink(t *testing.T) {
	router, _ := newTestRouter(t, seedInvoices())

	w := doRequest(router, http.MethodPost, "/v1/invoices/1/share", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp model.ShareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unavailable", resp.Outcome)
	assert.Contains(t, resp.WaLink, "https://wa.me/919876543210?text=")
}

func TestShareInvoiceNotFound(t *testing.T) {
	router, _ := newTestRouter(t, seedInvoices())

	w := doRequest(router, http.MethodPost, "/v1/invoices/999/share", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
