package reports

import (
	"strings"

	"github.com/google/uuid"
)

// ItemPDFFilename derives the stable on-disk name for an item sheet. The item
// name is sanitized so the filename stays shell and URL friendly, and the ID
// prefix keeps names unique across items with the same display name.
func ItemPDFFilename(name string, id uuid.UUID) string {
	sanitized := strings.ReplaceAll(name, " ", "_")
	sanitized = strings.ReplaceAll(sanitized, "/", "-")
	return sanitized + "_" + id.String()[:8] + ".pdf"
}
