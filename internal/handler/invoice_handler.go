package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/motoserve/garage-invoice-service/internal/domain"
	"github.com/motoserve/garage-invoice-service/internal/model"
	"github.com/motoserve/garage-invoice-service/internal/service"
)

// InvoiceHandler handles HTTP requests for the invoice list
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// RegisterRoutes registers the handler's routes with the given router
func (h *InvoiceHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/v1/invoices", h.ListInvoices)
	router.POST("/v1/invoices", h.CreateInvoice)
	router.POST("/v1/invoices/filters/reset", h.ResetFilters)
	router.POST("/v1/invoices/export", h.ExportAll)
	router.GET("/v1/invoices/:invoiceId", h.GetInvoiceByID)
	router.PUT("/v1/invoices/:invoiceId", h.UpdateInvoice)
	router.DELETE("/v1/invoices/:invoiceId", h.DeleteInvoice)
	router.POST("/v1/invoices/:invoiceId/delete/cancel", h.CancelDelete)
	router.GET("/v1/invoices/:invoiceId/pdf", h.DownloadInvoicePDF)
	router.POST("/v1/invoices/:invoiceId/share", h.ShareInvoice)
}

// ListInvoices handles the GET /invoices endpoint
// @Summary List invoices
// @Description Get the invoice list filtered by vehicle number substring and inclusive date range
// @Tags invoices
// @Produce json
// @Param vehicleNumber query string false "Vehicle number substring (case-insensitive)"
// @Param startDate query string false "Range start (YYYY-MM-DD); requires endDate"
// @Param endDate query string false "Range end (YYYY-MM-DD); requires startDate"
// @Success 200 {object} model.InvoiceListResponse "Filtered invoice list"
// @Failure 400 {object} model.ErrorResponse "Invalid query parameters"
// @Router /v1/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	criteria, err := parseFilterCriteria(c)
	if err != nil {
		respondBadRequest(c, ErrInvalidQueryParams, model.ErrorDetail{
			Field:   "query",
			Message: err.Error(),
		})
		return
	}

	// The request carries the full input state of the list view, so
	// absent parameters clear the corresponding criterion.
	h.invoiceService.SetVehicleFilter(criteria.VehicleSubstring)
	h.invoiceService.SetDateRange(criteria.DateFrom, criteria.DateTo)

	respondOK(c, formatListResponse(h.invoiceService.Invoices()))
}

// ResetFilters handles the POST /invoices/filters/reset endpoint
// @Summary Reset list filters
// @Description Clear the vehicle and date filters; the view equals the full collection again
// @Tags invoices
// @Produce json
// @Success 200 {object} model.InvoiceListResponse "Unfiltered invoice list"
// @Router /v1/invoices/filters/reset [post]
func (h *InvoiceHandler) ResetFilters(c *gin.Context) {
	h.invoiceService.ResetFilters()
	respondOK(c, formatListResponse(h.invoiceService.Invoices()))
}

// CreateInvoice handles the POST /invoices endpoint
// @Summary Create an invoice
// @Description Append a new invoice to the collection
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body model.InvoiceDTO true "Invoice to create"
// @Success 201 {object} model.InvoiceDTO "Created invoice"
// @Failure 400 {object} model.ErrorResponse "Invalid input"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var dto model.InvoiceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, ErrInvalidInput, model.ErrorDetail{
			Field:   "body",
			Message: err.Error(),
		})
		return
	}

	created, err := h.invoiceService.Create(c.Request.Context(), dto.ToDomain())
	if err != nil {
		respondInternalServerError(c, fmt.Sprintf("Failed to create invoice: %v", err))
		return
	}

	var out model.InvoiceDTO
	out.FromDomain(created)
	respondCreated(c, out)
}

// GetInvoiceByID handles the GET /invoices/{invoiceId} endpoint
// @Summary Get an invoice by ID
// @Description Retrieve a single invoice; with edit=true the edit-navigation handoff is recorded
// @Tags invoices
// @Produce json
// @Param invoiceId path string true "Invoice ID"
// @Param edit query bool false "Record an edit-navigation handoff"
// @Success 200 {object} model.InvoiceDTO "Invoice"
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Router /v1/invoices/{invoiceId} [get]
func (h *InvoiceHandler) GetInvoiceByID(c *gin.Context) {
	invoiceID, err := getPathParam(c, "invoiceId")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	inv, err := h.invoiceService.GetByID(invoiceID)
	if err != nil {
		respondNotFound(c, ErrResourceNotFound)
		return
	}

	if edit, _ := strconv.ParseBool(c.Query("edit")); edit {
		h.invoiceService.EditTarget(invoiceID)
	}

	var out model.InvoiceDTO
	out.FromDomain(inv)
	respondOK(c, out)
}

// UpdateInvoice handles the PUT /invoices/{invoiceId} endpoint
// @Summary Update an invoice
// @Description Replace the invoice with a matching ID
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoiceId path string true "Invoice ID"
// @Param invoice body model.InvoiceDTO true "Updated invoice"
// @Success 200 {object} model.InvoiceDTO "Updated invoice"
// @Failure 400 {object} model.ErrorResponse "Invalid input"
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Router /v1/invoices/{invoiceId} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	invoiceID, err := getPathParam(c, "invoiceId")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var dto model.InvoiceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, ErrInvalidInput, model.ErrorDetail{
			Field:   "body",
			Message: err.Error(),
		})
		return
	}

	inv := dto.ToDomain()
	inv.ID = invoiceID
	if err := h.invoiceService.Update(c.Request.Context(), inv); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondNotFound(c, ErrResourceNotFound)
			return
		}
		respondInternalServerError(c, fmt.Sprintf("Failed to update invoice: %v", err))
		return
	}

	var out model.InvoiceDTO
	out.FromDomain(inv)
	respondOK(c, out)
}

// DeleteInvoice handles the DELETE /invoices/{invoiceId} endpoint.
// Deletion is two-step: without confirm=true the invoice is only marked as
// pending and nothing is removed.
// @Summary Delete an invoice
// @Description Request deletion of an invoice; pass confirm=true to complete it
// @Tags invoices
// @Produce json
// @Param invoiceId path string true "Invoice ID"
// @Param confirm query bool false "Confirm the deletion"
// @Success 200 {object} model.DeleteConfirmedResponse "Invoice deleted"
// @Success 202 {object} model.DeleteRequestedResponse "Deletion pending confirmation"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/invoices/{invoiceId} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	invoiceID, err := getPathParam(c, "invoiceId")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	h.invoiceService.RequestDelete(invoiceID)

	confirm, _ := strconv.ParseBool(c.Query("confirm"))
	if !confirm {
		c.JSON(http.StatusAccepted, model.DeleteRequestedResponse{
			PendingDelete: invoiceID,
			Message:       "Confirm to delete this invoice",
		})
		return
	}

	if err := h.invoiceService.ConfirmDelete(c.Request.Context()); err != nil {
		respondInternalServerError(c, fmt.Sprintf("Failed to delete invoice: %v", err))
		return
	}

	respondOK(c, model.DeleteConfirmedResponse{
		Deleted: invoiceID,
		Message: "Invoice deleted",
	})
}

// CancelDelete handles the POST /invoices/{invoiceId}/delete/cancel endpoint
// @Summary Cancel a pending deletion
// @Description Clear the pending deletion without removing anything
// @Tags invoices
// @Produce json
// @Param invoiceId path string true "Invoice ID"
// @Success 200 {object} map[string]string "Deletion cancelled"
// @Router /v1/invoices/{invoiceId}/delete/cancel [post]
func (h *InvoiceHandler) CancelDelete(c *gin.Context) {
	h.invoiceService.CancelDelete()
	respondOK(c, gin.H{"message": "Deletion cancelled"})
}

// DownloadInvoicePDF handles the GET /invoices/{invoiceId}/pdf endpoint
// @Summary Download an invoice PDF
// @Description Render the invoice document and return it as a PDF download
// @Tags invoices
// @Produce application/pdf
// @Param invoiceId path string true "Invoice ID"
// @Success 200 {file} binary "Invoice PDF"
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/invoices/{invoiceId}/pdf [get]
func (h *InvoiceHandler) DownloadInvoicePDF(c *gin.Context) {
	invoiceID, err := getPathParam(c, "invoiceId")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	fileName, content, err := h.invoiceService.Export(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondNotFound(c, ErrResourceNotFound)
			return
		}
		respondInternalServerError(c, fmt.Sprintf("Failed to export invoice: %v", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))
	c.Data(http.StatusOK, "application/pdf", content)
}

// ExportAll handles the POST /invoices/export endpoint
// @Summary Export all listed invoices
// @Description Render every invoice in the current filtered view to PDF, one after another
// @Tags invoices
// @Produce json
// @Success 200 {object} model.ExportResponse "Exported file names"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/invoices/export [post]
func (h *InvoiceHandler) ExportAll(c *gin.Context) {
	fileNames, err := h.invoiceService.ExportAll(c.Request.Context())
	if err != nil {
		respondInternalServerError(c, fmt.Sprintf("Failed to export invoices: %v", err))
		return
	}

	log.Printf("Exported %d invoices", len(fileNames))
	respondOK(c, model.ExportResponse{
		Files: fileNames,
		Count: len(fileNames),
	})
}

// ShareInvoice handles the POST /invoices/{invoiceId}/share endpoint
// @Summary Share an invoice
// @Description Hand the invoice PDF to the share target, or return a WhatsApp link fallback
// @Tags invoices
// @Produce json
// @Param invoiceId path string true "Invoice ID"
// @Success 200 {object} model.ShareResponse "Share outcome"
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Failure 422 {object} model.ErrorResponse "Customer phone number missing"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/invoices/{invoiceId}/share [post]
func (h *InvoiceHandler) ShareInvoice(c *gin.Context) {
	invoiceID, err := getPathParam(c, "invoiceId")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result, err := h.invoiceService.Share(c.Request.Context(), invoiceID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondNotFound(c, ErrResourceNotFound)
		case errors.Is(err, service.ErrMissingPhone):
			respondUnprocessableEntity(c, "Customer phone number is missing", model.ErrorDetail{
				Field:   "customerPhone",
				Message: "a phone number is required to share an invoice",
			})
		default:
			respondInternalServerError(c, "Failed to share invoice")
		}
		return
	}

	respondOK(c, model.ShareResponse{
		Outcome: result.Outcome.String(),
		WaLink:  result.WaLink,
	})
}

// formatListResponse converts a filtered view into the list response body
func formatListResponse(invoices []domain.Invoice) model.InvoiceListResponse {
	data := make([]model.InvoiceDTO, len(invoices))
	for i := range invoices {
		data[i].FromDomain(&invoices[i])
	}
	return model.InvoiceListResponse{
		Data:  data,
		Count: len(data),
	}
}
