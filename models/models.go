package models

import (
	"fmt"
	"io"
	"mime"
	"os"
	"strings"
)

// PDFMediaType is the only content type the form accepts
const PDFMediaType = "application/pdf"

// SelectedFile represents a file handed over by the file picker
type SelectedFile struct {
	Name        string `json:"name" yaml:"name"`
	Path        string `json:"path" yaml:"path"`
	Size        int64  `json:"size" yaml:"size"`
	ContentType string `json:"content_type" yaml:"content_type"`
}

// MediaType returns the declared content type without parameters
func (f SelectedFile) MediaType() string {
	mediaType, _, err := mime.ParseMediaType(f.ContentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(f.ContentType))
	}
	return mediaType
}

// IsPDF reports whether the declared content type is the PDF media type
func (f SelectedFile) IsPDF() bool {
	return f.MediaType() == PDFMediaType
}

// Open returns the file contents for upload
func (f SelectedFile) Open() (io.ReadCloser, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", f.Name, err)
	}
	return file, nil
}

// ReadAll loads the full file contents into memory
func (f SelectedFile) ReadAll() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", f.Name, err)
	}
	return data, nil
}

// Status strings shown to the user after each submission attempt
const (
	StatusIdle          = ""
	StatusUploading     = "Uploading..."
	StatusFailed        = "Upload failed."
	StatusUnknownError  = "Unknown error"
	statusSuccessFormat = "Upload successful! %d file(s) uploaded."
	statusErrorPrefix   = "Error uploading files: "
)

// Notices shown as blocking messages
const (
	NoticeOnlyPDF      = "Please select only PDF files."
	NoticeMissingInput = "Please provide an email and select at least one file."
)

// SuccessStatus formats the status for a successful upload of count files
func SuccessStatus(count int) string {
	return fmt.Sprintf(statusSuccessFormat, count)
}

// ErrorStatus formats the status for a transport failure
func ErrorStatus(description string) string {
	if description == "" {
		description = StatusUnknownError
	}
	return statusErrorPrefix + description
}

// IsSuccessStatus reports whether a status string announces a successful upload
func IsSuccessStatus(status string) bool {
	return strings.Contains(status, "successful")
}
