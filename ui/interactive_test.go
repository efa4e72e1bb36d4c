package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"

	"pdf-upload-form/form"
	"pdf-upload-form/models"
	"pdf-upload-form/preview"
	"pdf-upload-form/testsupport"
	"pdf-upload-form/upload"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	infoMessages []string
	inputPos     int
	selectPos    int
	confirmPos   int

	// returned once the scripted selections run out
	selectErr error
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		if s.selectErr != nil {
			return -1, s.selectErr
		}
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

type countingUploader struct {
	calls int
}

func (u *countingUploader) Upload(_ context.Context, _ *upload.Request) (*upload.Response, error) {
	u.calls++
	return &upload.Response{StatusCode: http.StatusOK}, nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newController() (*form.Controller, *preview.Store) {
	log := quietLogger()
	store := preview.NewStore(nil, log)
	return form.NewController(store, log), store
}

func infoContains(msgs []string, want string) bool {
	for _, m := range msgs {
		if strings.Contains(m, want) {
			return true
		}
	}
	return false
}

func TestSession_AddEmailUpload(t *testing.T) {
	dir := t.TempDir()
	testsupport.WritePDF(t, dir, "a.pdf", "Alpha")
	testsupport.WriteFile(t, dir, "notes.txt", []byte("not a pdf\n"))

	rcv := testsupport.NewReceiver(t, http.StatusOK)
	ctrl, store := newController()
	client := upload.NewClient(rcv.URL(), 5*time.Second, quietLogger())

	driver := &stubDriver{
		inputs: []string{
			filepath.Join(dir, "a.pdf") + ", " + filepath.Join(dir, "notes.txt"),
			"user@example.com",
		},
		selectIdx: []int{actionAdd, actionEmail, actionUpload, actionQuit},
		confirm:   []bool{true},
	}

	var out bytes.Buffer
	s := NewSession(ctrl, client, driver, &out, rcv.URL(), quietLogger())
	if err := s.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !infoContains(driver.infoMessages, models.NoticeOnlyPDF) {
		t.Errorf("expected notice %q, got %v", models.NoticeOnlyPDF, driver.infoMessages)
	}
	if !infoContains(driver.infoMessages, models.SuccessStatus(1)) {
		t.Errorf("expected success status, got %v", driver.infoMessages)
	}

	subs := rcv.Submissions()
	if len(subs) != 1 {
		t.Fatalf("endpoint got %d submissions, want 1", len(subs))
	}
	if diff := cmp.Diff("user@example.com", subs[0].Email); diff != "" {
		t.Errorf("email mismatch (-want +got):\n%s", diff)
	}
	if len(subs[0].Files) != 1 || subs[0].Files[0].Filename != "a.pdf" {
		t.Errorf("files = %+v", subs[0].Files)
	}
	if store.Live() != 0 {
		t.Errorf("live handles = %d, want 0", store.Live())
	}
}

func TestSession_UploadRefused(t *testing.T) {
	ctrl, _ := newController()
	up := &countingUploader{}
	driver := &stubDriver{
		selectIdx: []int{actionUpload, actionQuit},
		confirm:   []bool{true},
	}

	s := NewSession(ctrl, up, driver, io.Discard, "http://example.invalid/upload", quietLogger())
	if err := s.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if up.calls != 0 {
		t.Errorf("uploader called %d times", up.calls)
	}
	if !infoContains(driver.infoMessages, models.NoticeMissingInput) {
		t.Errorf("expected notice %q, got %v", models.NoticeMissingInput, driver.infoMessages)
	}
	if driver.confirmPos != 1 {
		t.Errorf("notice acknowledged %d times, want 1", driver.confirmPos)
	}
}

func TestSession_RemoveFile(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		testsupport.WritePDF(t, dir, "a.pdf", "A"),
		testsupport.WritePDF(t, dir, "b.pdf", "B"),
	}

	ctrl, store := newController()
	driver := &stubDriver{selectIdx: []int{actionRemove, 0, actionQuit}}

	var out bytes.Buffer
	s := NewSession(ctrl, &countingUploader{}, driver, &out, "http://example.invalid/upload", quietLogger())
	if err := s.Run(context.Background(), paths); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(out.String(), "Selected Files (2):") || !strings.Contains(out.String(), "Selected Files (1):") {
		t.Errorf("form state not printed before and after removal:\n%s", out.String())
	}
	stats := store.GetStats()
	if stats.Created != 2 || stats.Released != 2 || stats.Live != 0 {
		t.Errorf("stats = %+v, want 2 created and released", stats)
	}
}

func TestSession_AbortReleasesHandles(t *testing.T) {
	dir := t.TempDir()
	ctrl, store := newController()
	driver := &stubDriver{selectErr: ErrAborted}

	s := NewSession(ctrl, &countingUploader{}, driver, io.Discard, "http://example.invalid/upload", quietLogger())
	err := s.Run(context.Background(), []string{testsupport.WritePDF(t, dir, "a.pdf", "A")})
	if err != nil {
		t.Fatalf("abort should end cleanly, got %v", err)
	}
	if store.Live() != 0 {
		t.Errorf("live handles = %d after abort, want 0", store.Live())
	}
}

func TestStatusLine(t *testing.T) {
	if got := StatusLine(models.StatusIdle); got != "" {
		t.Errorf("idle status rendered as %q", got)
	}
	for _, status := range []string{models.SuccessStatus(3), models.StatusFailed, models.ErrorStatus("")} {
		if got := StatusLine(status); !strings.Contains(got, status) {
			t.Errorf("StatusLine(%q) = %q", status, got)
		}
	}
}
