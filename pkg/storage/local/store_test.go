package local

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arunvel/stockkeep-backend/pkg/config"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	root := t.TempDir()
	store, err := New(config.StorageConfig{
		PDFDir:   filepath.Join(root, "pdfs"),
		ImageDir: filepath.Join(root, "images"),
	})
	require.NoError(t, err)
	return store
}

func TestNewCreatesDirectories(t *testing.T) {
	store := newTestStore(t)

	info, err := os.Stat(store.PDFDir())
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestPDFPathStripsDirectoryComponents(t *testing.T) {
	store := newTestStore(t)

	path := store.PDFPath("../../etc/passwd")
	require.Equal(t, filepath.Join(store.PDFDir(), "passwd"), path)
}

func TestRemovePDFMissingFileIsNotAnError(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.RemovePDF("never-written.pdf"))
}

func TestPDFExistsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	require.False(t, store.PDFExists("widget.pdf"))
	require.NoError(t, os.WriteFile(store.PDFPath("widget.pdf"), []byte("%PDF-1.4"), 0o644))
	require.True(t, store.PDFExists("widget.pdf"))

	require.NoError(t, store.RemovePDF("widget.pdf"))
	require.False(t, store.PDFExists("widget.pdf"))
}
