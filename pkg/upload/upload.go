package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const MaxFileSize = 5 * 1024 * 1024 // 5 MiB

var (
	ErrFileTooLarge = fmt.Errorf("file exceeds the %d MB size limit", MaxFileSize/(1024*1024))
	ErrNotAnImage   = fmt.Errorf("only image files are allowed")
)

// Images must pass both the extension and the declared MIME check,
// mirroring the accepted set jpeg|jpg|png|gif|webp.
var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Saver stores uploaded images on the local filesystem under baseDir.
// Files land in baseDir/<kind>s/ and are served statically at /uploads.
type Saver struct {
	baseDir string
}

// NewSaver creates the upload directories idempotently.
func NewSaver(baseDir string, kinds ...string) (*Saver, error) {
	for _, kind := range kinds {
		dir := filepath.Join(baseDir, kind+"s")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
		}
	}
	return &Saver{baseDir: baseDir}, nil
}

// Save validates and writes the uploaded image, returning the public
// path (e.g. "/uploads/courses/course-<uuid>.png").
func (s *Saver) Save(file *multipart.FileHeader, kind string) (string, error) {
	if file.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", ErrNotAnImage
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedMIMETypes[contentType] {
		return "", ErrNotAnImage
	}

	filename := fmt.Sprintf("%s-%s%s", kind, uuid.New().String(), ext)
	dst := filepath.Join(s.baseDir, kind+"s", filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fmt.Sprintf("/uploads/%ss/%s", kind, filename), nil
}

// Dir returns the root directory served at /uploads.
func (s *Saver) Dir() string {
	return s.baseDir
}
