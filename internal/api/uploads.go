package api

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/teris-io/shortid"
)

// saveTempFile copies an uploaded multipart file into the configured
// upload directory under a generated name. The caller owns the returned
// path and must remove it before the handler returns.
func (s *WhiteboardApp) saveTempFile(file multipart.File, originalName string) (string, error) {
	sid, err := shortid.Generate()
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.uploadDir, sid+filepath.Ext(originalName))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", err
	}

	return path, nil
}

// fileTypeFromMime classifies an upload by its MIME prefix: anything
// image/* is an image, everything else is treated as a pdf.
func fileTypeFromMime(contentType string) string {
	if strings.HasPrefix(contentType, "image") {
		return "image"
	}
	return "pdf"
}
