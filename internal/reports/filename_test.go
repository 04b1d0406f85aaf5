package reports

import (
	"testing"

	"github.com/google/uuid"
)

func TestItemPDFFilename(t *testing.T) {
	id := uuid.MustParse("3f2c8a31-0000-0000-0000-000000000000")

	got := ItemPDFFilename("USB C Hub", id)
	if got != "USB_C_Hub_3f2c8a31.pdf" {
		t.Fatalf("unexpected filename %s", got)
	}

	got = ItemPDFFilename("A/B Tester", id)
	if got != "A-B_Tester_3f2c8a31.pdf" {
		t.Fatalf("slashes must not create directories, got %s", got)
	}
}

func TestItemPDFFilenameDisambiguatesByID(t *testing.T) {
	a := ItemPDFFilename("Widget", uuid.MustParse("11111111-0000-0000-0000-000000000000"))
	b := ItemPDFFilename("Widget", uuid.MustParse("22222222-0000-0000-0000-000000000000"))
	if a == b {
		t.Fatal("same name with different IDs must map to different filenames")
	}
}
