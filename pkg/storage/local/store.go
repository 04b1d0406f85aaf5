// Package local persists generated artifacts (item PDFs, report PDFs,
// uploaded images) on the local filesystem under configured directories.
package local

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arunvel/stockkeep-backend/pkg/config"
)

// Store resolves and manages artifact files under the configured roots.
type Store struct {
	pdfDir   string
	imageDir string
}

// New ensures both directories exist and returns a Store rooted at them.
func New(cfg config.StorageConfig) (*Store, error) {
	for _, dir := range []string{cfg.PDFDir, cfg.ImageDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
		}
	}
	return &Store{pdfDir: cfg.PDFDir, imageDir: cfg.ImageDir}, nil
}

// PDFDir returns the root directory for generated PDFs.
func (s *Store) PDFDir() string { return s.pdfDir }

// PDFPath returns the absolute location for a PDF filename.
func (s *Store) PDFPath(filename string) string {
	return filepath.Join(s.pdfDir, filepath.Base(filename))
}

// ImagePath returns the absolute location for an image filename.
func (s *Store) ImagePath(filename string) string {
	return filepath.Join(s.imageDir, filepath.Base(filename))
}

// PDFExists reports whether the named PDF is present on disk.
func (s *Store) PDFExists(filename string) bool {
	info, err := os.Stat(s.PDFPath(filename))
	return err == nil && !info.IsDir()
}

// RemovePDF deletes the named PDF. A missing file is not an error.
func (s *Store) RemovePDF(filename string) error {
	err := os.Remove(s.PDFPath(filename))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove pdf %s: %w", filename, err)
	}
	return nil
}

// RemoveImage deletes the named image. A missing file is not an error.
func (s *Store) RemoveImage(filename string) error {
	err := os.Remove(s.ImagePath(filename))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image %s: %w", filename, err)
	}
	return nil
}
