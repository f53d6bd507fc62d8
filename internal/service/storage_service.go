package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// MaxUploadSize caps each uploaded document at 10 MB.
const MaxUploadSize = 10 << 20

var (
	ErrFileTooLarge = errors.New("file exceeds the 10MB limit")
	ErrFileNotFound = errors.New("file not found")
)

// StorageService writes uploaded documents to a server-local directory and
// reads them back for download. Stored names are unique per upload, so no
// file-level locking is needed.
type StorageService struct {
	dir string
}

func NewStorageService(dir string) (*StorageService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &StorageService{dir: dir}, nil
}

// Save persists one uploaded file part and returns the on-disk name used to
// reference it from a submission row. The client filename is reduced to its
// base name before use, so it cannot escape the upload directory.
func (s *StorageService) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer src.Close()

	name := fmt.Sprintf("%s_%s", uuid.New().String(), sanitizeName(fh.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return name, nil
}

// Read returns the bytes of a stored file. The name is sanitized the same way
// Save sanitizes it, so lookups stay inside the upload directory.
func (s *StorageService) Read(name string) ([]byte, error) {
	clean := sanitizeName(name)
	if clean == "" {
		return nil, ErrFileNotFound
	}
	data, err := os.ReadFile(filepath.Join(s.dir, clean))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

func sanitizeName(name string) string {
	base := filepath.Base(filepath.Clean("/" + name))
	if base == "/" || base == "." {
		return ""
	}
	return base
}
