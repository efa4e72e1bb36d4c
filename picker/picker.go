// Package picker turns paths chosen by the user into SelectedFile values.
// The content type is declared by sniffing the file, not trusted from the
// extension, so a renamed text file is still reported as text.
package picker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"pdf-upload-form/models"
)

// ErrIsDirectory is returned when a directory is passed where a file is expected
var ErrIsDirectory = errors.New("is a directory")

// PathError ties a failure to the path that produced it
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Open stats path and declares its content type
func Open(path string) (models.SelectedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.SelectedFile{}, &PathError{Path: path, Err: err}
	}
	if info.IsDir() {
		return models.SelectedFile{}, &PathError{Path: path, Err: ErrIsDirectory}
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return models.SelectedFile{}, &PathError{Path: path, Err: fmt.Errorf("error detecting content type: %w", err)}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	return models.SelectedFile{
		Name:        info.Name(),
		Path:        abs,
		Size:        info.Size(),
		ContentType: mtype.String(),
	}, nil
}

// OpenAll opens every path, collecting failures instead of stopping at the first
func OpenAll(paths []string) ([]models.SelectedFile, []error) {
	files := make([]models.SelectedFile, 0, len(paths))
	var errs []error

	for _, path := range paths {
		f, err := Open(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		files = append(files, f)
	}

	return files, errs
}

// Expand resolves shell-style globs. Arguments without glob characters, or
// globs that match nothing, are passed through so Open can report them.
func Expand(args []string) []string {
	var out []string
	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil || len(matches) == 0 {
			out = append(out, arg)
			continue
		}
		out = append(out, matches...)
	}
	return out
}
