// Package form holds the upload form's state and the handlers that change it.
//
// A Controller owns the accepted files, their preview handles (paired by
// index), the email string and the status line. It is not safe for
// concurrent use: every handler runs on the UI event loop, and only the
// network call itself happens elsewhere, on an immutable Request.
package form

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"pdf-upload-form/models"
	"pdf-upload-form/preview"
	"pdf-upload-form/upload"
)

var (
	ErrIndexOutOfRange = errors.New("file index out of range")
	ErrMissingInput    = errors.New(models.NoticeMissingInput)
	ErrUploadInFlight  = errors.New("an upload is already in progress")
)

// Uploader performs the single outbound call
type Uploader interface {
	Upload(ctx context.Context, req *upload.Request) (*upload.Response, error)
}

// SelectionResult describes what one file selection did
type SelectionResult struct {
	Accepted []models.SelectedFile
	Rejected []models.SelectedFile
}

// Notice is the blocking message to show, or "" when everything was accepted
func (r SelectionResult) Notice() string {
	if len(r.Rejected) > 0 {
		return models.NoticeOnlyPDF
	}
	return ""
}

type Controller struct {
	files    []models.SelectedFile
	previews []*preview.Handle
	email    string
	status   string
	inFlight bool

	store *preview.Store
	log   *logrus.Logger
}

func NewController(store *preview.Store, log *logrus.Logger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if store == nil {
		store = preview.NewStore(nil, log)
	}
	return &Controller{
		store:  store,
		log:    log,
		status: models.StatusIdle,
	}
}

// SelectFiles appends the PDF items of selection, each with a fresh preview
// handle at the same index. Other items are rejected without affecting the
// accepted ones.
func (c *Controller) SelectFiles(selection []models.SelectedFile) SelectionResult {
	var result SelectionResult

	for _, f := range selection {
		if !f.IsPDF() {
			result.Rejected = append(result.Rejected, f)
			continue
		}
		result.Accepted = append(result.Accepted, f)
	}

	for _, f := range result.Accepted {
		c.files = append(c.files, f)
		c.previews = append(c.previews, c.store.Create(f))
	}

	c.log.WithFields(logrus.Fields{
		"accepted": len(result.Accepted),
		"rejected": len(result.Rejected),
		"total":    len(c.files),
	}).Info("files selected")

	return result
}

// RemoveFile drops the file at index together with its preview handle
func (c *Controller) RemoveFile(index int) error {
	if index < 0 || index >= len(c.files) {
		return ErrIndexOutOfRange
	}

	handle := c.previews[index]
	name := c.files[index].Name

	c.files = append(c.files[:index:index], c.files[index+1:]...)
	c.previews = append(c.previews[:index:index], c.previews[index+1:]...)

	if err := c.store.Release(handle.ID); err != nil {
		c.log.WithError(err).WithField("handle", handle.ID).Warn("preview release failed")
	}

	c.log.WithFields(logrus.Fields{"file": name, "index": index, "total": len(c.files)}).Info("file removed")
	return nil
}

// SetEmail stores value exactly as typed
func (c *Controller) SetEmail(value string) {
	c.email = value
}

// CanSubmit reports whether the submit preconditions hold
func (c *Controller) CanSubmit() bool {
	return len(c.files) > 0 && c.email != ""
}

// BeginSubmit checks preconditions, marks the upload in progress and returns
// the request snapshot to send.
func (c *Controller) BeginSubmit() (*upload.Request, error) {
	if !c.CanSubmit() {
		c.log.WithFields(logrus.Fields{"files": len(c.files), "email_set": c.email != ""}).Info("submit refused")
		return nil, ErrMissingInput
	}
	if c.inFlight {
		c.log.Info("submit refused: upload in flight")
		return nil, ErrUploadInFlight
	}

	c.inFlight = true
	c.status = models.StatusUploading

	files := make([]models.SelectedFile, len(c.files))
	copy(files, c.files)

	return &upload.Request{Email: c.email, Files: files}, nil
}

// FinishSubmit applies the outcome of the request started by BeginSubmit
func (c *Controller) FinishSubmit(req *upload.Request, resp *upload.Response, err error) {
	c.inFlight = false

	switch {
	case err != nil:
		c.status = models.ErrorStatus(err.Error())
		c.log.WithError(err).Warn("upload failed before a response")
	case resp.OK():
		c.status = models.SuccessStatus(len(req.Files))
		c.clear()
		c.log.WithField("files", len(req.Files)).Info("upload accepted")
	default:
		c.status = models.StatusFailed
		code := 0
		if resp != nil {
			code = resp.StatusCode
		}
		c.log.WithField("status", code).Warn("upload rejected")
	}
}

// Submit runs a whole submission synchronously
func (c *Controller) Submit(ctx context.Context, uploader Uploader) error {
	req, err := c.BeginSubmit()
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := uploader.Upload(ctx, req)
	c.log.WithField("elapsed", time.Since(start).String()).Debug("upload call returned")

	c.FinishSubmit(req, resp, err)
	return nil
}

// Close releases every preview handle still held. The controller stays usable.
func (c *Controller) Close() {
	c.clear()
}

func (c *Controller) clear() {
	for _, h := range c.previews {
		if err := c.store.Release(h.ID); err != nil {
			c.log.WithError(err).WithField("handle", h.ID).Warn("preview release failed")
		}
	}
	c.files = nil
	c.previews = nil
}

// Files returns a copy of the accepted list
func (c *Controller) Files() []models.SelectedFile {
	out := make([]models.SelectedFile, len(c.files))
	copy(out, c.files)
	return out
}

// Previews returns a copy of the handle list, paired with Files by index
func (c *Controller) Previews() []*preview.Handle {
	out := make([]*preview.Handle, len(c.previews))
	copy(out, c.previews)
	return out
}

func (c *Controller) Count() int      { return len(c.files) }
func (c *Controller) Email() string   { return c.email }
func (c *Controller) Status() string  { return c.status }
func (c *Controller) Uploading() bool { return c.inFlight }
