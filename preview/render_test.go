package preview

import (
	"strings"
	"testing"

	"pdf-upload-form/models"
	"pdf-upload-form/testsupport"
)

func TestRenderBytes_ValidDocument(t *testing.T) {
	data := testsupport.BuildPDF("Hello PDF preview", "Second page")

	summary := RenderBytes(data)
	if summary.Err != nil {
		t.Fatalf("unexpected error: %v", summary.Err)
	}
	if summary.Pages != 2 {
		t.Errorf("Pages = %d, want 2", summary.Pages)
	}
	if !strings.Contains(summary.Excerpt, "Hello") {
		t.Errorf("Excerpt = %q, want first page text", summary.Excerpt)
	}
}

func TestRenderBytes_Garbage(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"text", []byte("this is not a pdf at all")},
		{"truncated header", []byte("%PDF-1.4\n")},
		{"header then junk", append([]byte("%PDF-1.4\n"), make([]byte, 512)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := RenderBytes(tt.data)
			if summary.Available() {
				t.Errorf("expected render failure, got %+v", summary)
			}
		})
	}
}

func TestRender_FromDisk(t *testing.T) {
	path := testsupport.WritePDF(t, t.TempDir(), "doc.pdf", "On disk")

	summary := Render(models.SelectedFile{Name: "doc.pdf", Path: path})
	if summary.Err != nil {
		t.Fatalf("unexpected error: %v", summary.Err)
	}
	if summary.Pages != 1 {
		t.Errorf("Pages = %d, want 1", summary.Pages)
	}
}
