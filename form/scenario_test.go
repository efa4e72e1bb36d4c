package form

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"pdf-upload-form/picker"
	"pdf-upload-form/preview"
	"pdf-upload-form/testsupport"
	"pdf-upload-form/upload"
)

// Two PDFs and a text file are picked from disk, then uploaded to a real
// HTTP endpoint that answers 200.
func TestScenario_SelectTwoPDFsAndUpload(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		testsupport.WritePDF(t, dir, "invoice.pdf", "Invoice 42"),
		testsupport.WriteFile(t, dir, "notes.txt", []byte("remember the milk\n")),
		testsupport.WritePDF(t, dir, "receipt.pdf", "Receipt"),
	}

	selection, errs := picker.OpenAll(paths)
	if len(errs) != 0 {
		t.Fatalf("picker errors: %v", errs)
	}

	log := quietLogger()
	store := preview.NewStore(nil, log)
	c := NewController(store, log)

	res := c.SelectFiles(selection)
	if c.Count() != 2 {
		t.Fatalf("accepted %d files, want 2", c.Count())
	}
	if res.Notice() == "" {
		t.Error("expected one blocking notice for the text file")
	}
	for i, h := range c.Previews() {
		if h.Summary.Pages != 1 {
			t.Errorf("preview %d: pages = %d, want 1 (err %v)", i, h.Summary.Pages, h.Summary.Err)
		}
	}

	c.SetEmail("a@b.com")

	recv := testsupport.NewReceiver(t, http.StatusOK)
	client := upload.NewClient(recv.URL(), 0, log)

	if err := c.Submit(context.Background(), client); err != nil {
		t.Fatalf("Submit() = %v", err)
	}

	subs := recv.Submissions()
	if len(subs) != 1 {
		t.Fatalf("endpoint saw %d requests, want 1", len(subs))
	}
	if subs[0].Email != "a@b.com" {
		t.Errorf("email_id = %q, want a@b.com", subs[0].Email)
	}
	var got []string
	for _, f := range subs[0].Files {
		got = append(got, f.Filename)
	}
	if diff := cmp.Diff([]string{"invoice.pdf", "receipt.pdf"}, got); diff != "" {
		t.Errorf("uploaded parts mismatch (-want +got):\n%s", diff)
	}

	if c.Count() != 0 || store.Live() != 0 {
		t.Errorf("after success: files=%d live handles=%d, want 0/0", c.Count(), store.Live())
	}
	if c.Status() != "Upload successful! 2 file(s) uploaded." {
		t.Errorf("Status() = %q", c.Status())
	}
}

func TestScenario_ServerErrorKeepsFiles(t *testing.T) {
	dir := t.TempDir()
	selection, _ := picker.OpenAll([]string{testsupport.WritePDF(t, dir, "a.pdf", "A")})

	log := quietLogger()
	c := NewController(preview.NewStore(nil, log), log)
	c.SelectFiles(selection)
	c.SetEmail("a@b.com")

	recv := testsupport.NewReceiver(t, http.StatusInternalServerError)
	if err := c.Submit(context.Background(), upload.NewClient(recv.URL(), 0, log)); err != nil {
		t.Fatalf("Submit() = %v", err)
	}
	if c.Status() != "Upload failed." || c.Count() != 1 {
		t.Errorf("status %q, count %d", c.Status(), c.Count())
	}

	recv.SetStatus(http.StatusOK)
	if err := c.Submit(context.Background(), upload.NewClient(recv.URL(), 0, log)); err != nil {
		t.Fatalf("retry Submit() = %v", err)
	}
	if c.Count() != 0 || len(recv.Submissions()) != 2 {
		t.Errorf("retry should upload and clear; count %d, requests %d", c.Count(), len(recv.Submissions()))
	}
}
