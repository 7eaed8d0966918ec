package model

import (
	"github.com/motoserve/garage-invoice-service/internal/domain"
)

// ServiceItemDTO represents a single service line for data transfer
type ServiceItemDTO struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// InvoiceDTO represents an invoice for data transfer
type InvoiceDTO struct {
	ID            string           `json:"id"`
	Date          string           `json:"date"` // Format: YYYY-MM-DD
	CustomerName  string           `json:"customerName"`
	CustomerPhone string           `json:"customerPhone,omitempty"`
	VehicleModel  string           `json:"vehicleModel"`
	VehicleNumber string           `json:"vehicleNumber"`
	Services      []ServiceItemDTO `json:"services"`
	Total         float64          `json:"total"`
}

// FromDomain converts a domain Invoice to an InvoiceDTO
func (dto *InvoiceDTO) FromDomain(inv *domain.Invoice) {
	dto.ID = inv.ID
	dto.Date = inv.Date.Raw
	dto.CustomerName = inv.CustomerName
	dto.CustomerPhone = inv.CustomerPhone
	dto.VehicleModel = inv.VehicleModel
	dto.VehicleNumber = inv.VehicleNumber
	dto.Total = inv.Total

	dto.Services = make([]ServiceItemDTO, 0, len(inv.Services))
	for _, item := range inv.Services {
		dto.Services = append(dto.Services, ServiceItemDTO{
			Description: item.Description,
			Amount:      item.Amount,
		})
	}
}

// ToDomain converts an InvoiceDTO to a domain Invoice
func (dto *InvoiceDTO) ToDomain() *domain.Invoice {
	inv := domain.NewInvoice()
	inv.ID = dto.ID
	inv.Date = domain.InvoiceDate{Raw: dto.Date}
	inv.CustomerName = dto.CustomerName
	inv.CustomerPhone = dto.CustomerPhone
	inv.VehicleModel = dto.VehicleModel
	inv.VehicleNumber = dto.VehicleNumber
	inv.Total = dto.Total

	for _, item := range dto.Services {
		inv.AddService(domain.ServiceItem{
			Description: item.Description,
			Amount:      item.Amount,
		})
	}

	return inv
}

// InvoiceListResponse represents the response to a filtered list request
type InvoiceListResponse struct {
	Data  []InvoiceDTO `json:"data"`
	Count int          `json:"count"`
}

// DeleteRequestedResponse represents the first step of the two-step delete
type DeleteRequestedResponse struct {
	PendingDelete string `json:"pendingDelete"`
	Message       string `json:"message"`
}

// DeleteConfirmedResponse represents a completed delete
type DeleteConfirmedResponse struct {
	Deleted string `json:"deleted"`
	Message string `json:"message"`
}

// ExportResponse represents the result of a bulk export
type ExportResponse struct {
	Files []string `json:"files"`
	Count int      `json:"count"`
}

// ShareResponse represents the result of a share attempt
type ShareResponse struct {
	Outcome string `json:"outcome"`
	WaLink  string `json:"waLink,omitempty"`
}

// ErrorDetail represents one field-level error in an error response
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}
