package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage backend names accepted in STORAGE_BACKEND
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigin   string

	// Storage configuration
	StorageBackend string
	BlobPath       string
	StoreKey       string
	PostgresURL    string

	// Export configuration
	ExportDir      string
	CurrencySymbol string
}

// LoadConfig loads the application configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file. Using environment variables.")
	}

	config := &Config{
		// Server configuration
		Port:         getEnvInt("PORT", 8080),
		ReadTimeout:  time.Duration(getEnvInt("READ_TIMEOUT", 10)) * time.Second,
		WriteTimeout: time.Duration(getEnvInt("WRITE_TIMEOUT", 30)) * time.Second,
		CORSOrigin:   getEnvString("CORS_ORIGIN", "*"),

		// Storage configuration
		StorageBackend: getEnvString("STORAGE_BACKEND", StorageFile),
		BlobPath:       getEnvString("BLOB_PATH", "data/invoices.json"),
		StoreKey:       getEnvString("STORE_KEY", "invoices"),
		PostgresURL:    os.Getenv("POSTGRES_DB_URL"),

		// Export configuration
		ExportDir:      getEnvString("EXPORT_DIR", "exports"),
		CurrencySymbol: getEnvString("CURRENCY_SYMBOL", "Rs."),
	}

	validateConfig(config)

	return config, nil
}

// validateConfig checks if critical configuration values are set and logs
// warnings if they're missing.
func validateConfig(config *Config) {
	switch config.StorageBackend {
	case StorageFile, StoragePostgres:
	default:
		log.Printf("Warning: Unknown storage backend %q, falling back to %q", config.StorageBackend, StorageFile)
		config.StorageBackend = StorageFile
	}

	if config.StorageBackend == StoragePostgres && config.PostgresURL == "" {
		log.Println("Warning: STORAGE_BACKEND is postgres but POSTGRES_DB_URL is not set. Startup will fail.")
	}
}

// getEnvString retrieves a string environment variable with a default value
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid value for %s, using default %d", key, defaultValue)
		return defaultValue
	}

	return value
}
