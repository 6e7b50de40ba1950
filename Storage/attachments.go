package Storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Root is the directory all attachments are written to and served from.
// Overridable through UPLOAD_DIR at startup.
var Root = "uploads"

// ErrInvalidName is returned when a requested filename is not a bare file
// name relative to the storage root.
var ErrInvalidName = errors.New("invalid attachment name")

// Save writes an uploaded file under Root with a millisecond-timestamp prefix
// so repeated uploads of the same filename never collide. It returns the
// stored path relative to the working directory, e.g. "uploads/17093-a.pdf".
func Save(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(Root, 0755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(Root, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filepath.ToSlash(filepath.Join(Root, name)), nil
}

// ContentTypeByExtension maps a filename to the content type it is served
// with. Unrecognized extensions return "". No content sniffing.
func ContentTypeByExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return ""
	}
}

// Resolve returns the on-disk path for a stored attachment. Anything that is
// not a bare file name (separators, "..", empty) is rejected before joining,
// so a request can never escape Root.
func Resolve(filename string) (string, error) {
	if filename == "" || filename == "." || filename == ".." {
		return "", ErrInvalidName
	}
	if strings.ContainsAny(filename, `/\`) || filename != filepath.Base(filename) {
		return "", ErrInvalidName
	}
	return filepath.Join(Root, filename), nil
}
