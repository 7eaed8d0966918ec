package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServiceItem represents a service line in the API
type TestServiceItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// TestInvoice represents an invoice in the API
type TestInvoice struct {
	ID            string            `json:"id,omitempty"`
	Date          string            `json:"date"`
	CustomerName  string            `json:"customerName"`
	CustomerPhone string            `json:"customerPhone,omitempty"`
	VehicleModel  string            `json:"vehicleModel"`
	VehicleNumber string            `json:"vehicleNumber"`
	Services      []TestServiceItem `json:"services"`
	Total         float64           `json:"total"`
}

// TestInvoiceListResponse represents the response from GET /invoices
type TestInvoiceListResponse struct {
	Data  []TestInvoice `json:"data"`
	Count int           `json:"count"`
}

// TestInvoiceAPI exercises the invoice API endpoints against a running
// server. Set API_BASE_URL to point at a non-default instance.
func TestInvoiceAPI(t *testing.T) {
	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080/v1"
	}

	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	// Skip when no server is running rather than failing the suite.
	if _, err := client.Get(baseURL + "/invoices"); err != nil {
		t.Skipf("API not reachable at %s: %v", baseURL, err)
	}

	var testInvoiceID string

	// 1. Test creating an invoice
	t.Run("CreateInvoice", func(t *testing.T) {
		input := TestInvoice{
			Date:          "2024-04-20",
			CustomerName:  "Integration Customer",
			CustomerPhone: "+91 90000 00001",
			VehicleModel:  "Swift",
			VehicleNumber: "KA51ZT0042",
			Services: []TestServiceItem{
				{Description: "Oil change", Amount: 500},
				{Description: "Wheel alignment", Amount: 750},
			},
			Total: 1250,
		}

		body, err := json.Marshal(input)
		require.NoError(t, err)

		resp, err := client.Post(baseURL+"/invoices", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var created TestInvoice
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		require.NotEmpty(t, created.ID)
		testInvoiceID = created.ID
	})

	// 2. Test the vehicle filter finds the created invoice
	t.Run("FilterByVehicleNumber", func(t *testing.T) {
		require.NotEmpty(t, testInvoiceID)

		resp, err := client.Get(baseURL + "/invoices?vehicleNumber=ka51zt")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var list TestInvoiceListResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))

		found := false
		for _, inv := range list.Data {
			assert.Contains(t, inv.VehicleNumber, "KA51ZT")
			if inv.ID == testInvoiceID {
				found = true
			}
		}
		assert.True(t, found, "created invoice should appear in the filtered list")
	})

	// 3. Test the PDF download
	t.Run("DownloadPDF", func(t *testing.T) {
		require.NotEmpty(t, testInvoiceID)

		resp, err := client.Get(fmt.Sprintf("%s/invoices/%s/pdf", baseURL, testInvoiceID))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
		assert.Contains(t, resp.Header.Get("Content-Disposition"), ".pdf")
	})

	// 4. Test the two-step delete
	t.Run("DeleteInvoice", func(t *testing.T) {
		require.NotEmpty(t, testInvoiceID)

		// Request without confirmation
		req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/invoices/%s", baseURL, testInvoiceID), nil)
		require.NoError(t, err)
		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusAccepted, resp.StatusCode)

		// Confirm
		req, err = http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/invoices/%s?confirm=true", baseURL, testInvoiceID), nil)
		require.NoError(t, err)
		resp, err = client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		// The invoice is gone
		getResp, err := client.Get(fmt.Sprintf("%s/invoices/%s", baseURL, testInvoiceID))
		require.NoError(t, err)
		getResp.Body.Close()
		assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
	})
}
