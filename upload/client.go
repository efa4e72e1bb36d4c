// Package upload sends the form as a single multipart/form-data POST.
//
// The body carries one text field, email_id, and one "files" part per
// selected file in selection order. Any HTTP response is returned to the
// caller as-is; only transport failures are errors.
package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"pdf-upload-form/models"
)

// Form field names expected by the receiving endpoint
const (
	FieldEmail = "email_id"
	FieldFiles = "files"
)

// Request is an immutable snapshot of what one submission sends
type Request struct {
	Email string
	Files []models.SelectedFile
}

// Response is the part of the HTTP response the form cares about
type Response struct {
	StatusCode int
	Status     string
}

// OK reports whether the endpoint accepted the upload
func (r *Response) OK() bool {
	return r != nil && r.StatusCode == http.StatusOK
}

type Client struct {
	endpoint   string
	httpClient *http.Client
	log        *logrus.Logger
}

// NewClient creates a client posting to endpoint. A zero timeout keeps the
// transport default.
func NewClient(endpoint string, timeout time.Duration, log *logrus.Logger) *Client {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Upload builds the multipart body and posts it
func (c *Client) Upload(ctx context.Context, req *Request) (*Response, error) {
	body, contentType, err := EncodeForm(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	start := time.Now()
	c.log.WithFields(logrus.Fields{
		"endpoint": c.endpoint,
		"files":    len(req.Files),
		"bytes":    body.Len(),
	}).Info("upload started")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.WithError(err).Warn("upload transport failure")
		return nil, err
	}
	defer resp.Body.Close()

	// The body is never interpreted, but draining it lets the connection be reused
	io.Copy(io.Discard, resp.Body)

	c.log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start).Round(time.Millisecond).String(),
	}).Info("upload finished")

	return &Response{StatusCode: resp.StatusCode, Status: resp.Status}, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// EncodeForm writes the multipart body for req and returns it with its
// Content-Type header value.
func EncodeForm(req *Request) (*bytes.Buffer, string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField(FieldEmail, req.Email); err != nil {
		return nil, "", fmt.Errorf("failed to write %s field: %w", FieldEmail, err)
	}

	for _, file := range req.Files {
		if err := writeFilePart(writer, file); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return &body, writer.FormDataContentType(), nil
}

func writeFilePart(writer *multipart.Writer, file models.SelectedFile) error {
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		FieldFiles, quoteEscaper.Replace(file.Name)))
	h.Set("Content-Type", contentType)

	part, err := writer.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("failed to copy %s: %w", file.Name, err)
	}
	return nil
}
