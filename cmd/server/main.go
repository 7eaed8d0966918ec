package main

import (
	"context"
	"log"

	_ "github.com/motoserve/garage-invoice-service/docs"
	"github.com/motoserve/garage-invoice-service/internal/config"
	"github.com/motoserve/garage-invoice-service/internal/database"
	"github.com/motoserve/garage-invoice-service/internal/handler"
	"github.com/motoserve/garage-invoice-service/internal/pdf"
	"github.com/motoserve/garage-invoice-service/internal/platform"
	"github.com/motoserve/garage-invoice-service/internal/repository"
	"github.com/motoserve/garage-invoice-service/internal/server"
	"github.com/motoserve/garage-invoice-service/internal/service"
	"github.com/motoserve/garage-invoice-service/internal/share"
)

// @title Garage Invoice Service API
// @version 1.0
// @description Manages service invoices for a vehicle garage: filtering, PDF export and sharing.
// @BasePath /
func main() {
	// Load configuration
	log.Println("Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize repository
	log.Printf("Initializing %s repository...", cfg.StorageBackend)
	var repo repository.InvoiceRepository
	switch cfg.StorageBackend {
	case config.StoragePostgres:
		db, err := database.NewPostgresDB(cfg.PostgresURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		repo, err = repository.NewPostgresInvoiceRepository(context.Background(), db.GetPool(), cfg.StoreKey)
		if err != nil {
			log.Fatalf("Failed to initialize repository: %v", err)
		}
	default:
		repo, err = repository.NewFileRepository(cfg.BlobPath)
		if err != nil {
			log.Fatalf("Failed to initialize repository: %v", err)
		}
	}

	// Wire the export and share collaborators
	saver, err := platform.NewDirSaver(cfg.ExportDir)
	if err != nil {
		log.Fatalf("Failed to initialize export directory: %v", err)
	}

	generator := pdf.NewGenerator(cfg.CurrencySymbol)

	// Create the invoice list service
	invoiceService := service.NewInvoiceService(
		repo,
		generator,
		share.NewUnavailableSharer(),
		platform.NewLogNotifier(),
		platform.NewLogNavigator(),
		saver,
		cfg.CurrencySymbol,
	)

	// Load the collection before serving
	if err := invoiceService.Load(context.Background()); err != nil {
		log.Fatalf("Failed to load invoice collection: %v", err)
	}
	log.Printf("Loaded %d invoices", len(invoiceService.Invoices()))

	// Create handler and server
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)

	log.Println("Configuring server...")
	appServer := server.NewServer(cfg, invoiceHandler)

	// Start server (blocking call)
	if err := appServer.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
