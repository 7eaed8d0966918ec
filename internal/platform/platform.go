// Package platform provides the default collaborator implementations the
// invoice service is wired with in production: log-backed notifications and
// navigation, and an export directory for saved documents.
package platform

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// LogNotifier writes user-visible notifications to the service log
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Success records a success notification
func (n *LogNotifier) Success(message string) {
	log.Printf("notify success: %s", message)
}

// Failure records a failure notification
func (n *LogNotifier) Failure(message string) {
	log.Printf("notify failure: %s", message)
}

// LogNavigator records edit-navigation handoffs. The HTTP surface returns
// the invoice data itself; navigation is the client's concern.
type LogNavigator struct{}

// NewLogNavigator creates a log-backed navigator
func NewLogNavigator() *LogNavigator {
	return &LogNavigator{}
}

// NavigateToEdit records the handoff
func (n *LogNavigator) NavigateToEdit(invoiceID string) {
	log.Printf("navigate to edit: %s", invoiceID)
}

// DirSaver saves exported documents into a directory
type DirSaver struct {
	dir string
}

// NewDirSaver creates a saver writing into dir, creating it when missing
func NewDirSaver(dir string) (*DirSaver, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	return &DirSaver{dir: dir}, nil
}

// Save writes one exported document
func (s *DirSaver) Save(fileName string, content []byte) error {
	path := filepath.Join(s.dir, fileName)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to save %s: %w", fileName, err)
	}
	return nil
}
