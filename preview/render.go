// Package preview keeps one rendered summary per selected PDF so the UI can
// show it without reading the file again.
package preview

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"

	"pdf-upload-form/models"
	"pdf-upload-form/utils"
)

// ExcerptLength is the maximum number of characters kept from page one
const ExcerptLength = 280

// ErrNoPages is reported for documents that parse but contain no pages
var ErrNoPages = errors.New("document has no pages")

// Summary is what the preview pane displays for a handle
type Summary struct {
	Pages   int
	Excerpt string
	Err     error
}

// Available reports whether the renderer produced anything to show
func (s Summary) Available() bool {
	return s.Err == nil
}

// Render reads the file and summarises it
func Render(file models.SelectedFile) Summary {
	data, err := file.ReadAll()
	if err != nil {
		return Summary{Err: err}
	}
	return RenderBytes(data)
}

// RenderBytes summarises an in-memory PDF. The parser panics on some
// malformed input; that is reported as an error like any other failure.
func RenderBytes(data []byte) (summary Summary) {
	defer func() {
		if r := recover(); r != nil {
			summary = Summary{Err: fmt.Errorf("failed to render PDF: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Summary{Err: fmt.Errorf("failed to open PDF: %w", err)}
	}

	pages := reader.NumPage()
	if pages == 0 {
		return Summary{Err: ErrNoPages}
	}

	summary.Pages = pages
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// image-only pages have no text; keep looking
			continue
		}
		if excerpt := utils.CollapseWhitespace(text); excerpt != "" {
			summary.Excerpt = utils.TruncateString(excerpt, ExcerptLength)
			break
		}
	}

	return summary
}
