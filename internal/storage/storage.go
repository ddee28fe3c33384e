package storage

import (
	"io"            // Stream copy
	"mime/multipart" // Uploaded file headers
	"os"            // File creation
	"path/filepath" // Path handling

	"github.com/google/uuid" // Stored file names
)

// FileStore accepts a binary upload and returns a retrievable URL for it.
// Implementations are expected to be durable; writes happen outside any
// database transaction, so a crash between a store write and the row commit
// can leave an orphaned file.
type FileStore interface {
	Save(fh *multipart.FileHeader) (string, error)
}

// DiskStore writes uploads to a local directory and serves them under a
// fixed URL prefix.
type DiskStore struct {
	dir     string // Destination directory
	baseURL string // Public URL prefix
}

// NewDiskStore creates the destination directory if needed.
func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir, baseURL: baseURL}, nil
}

// Save stores an uploaded file under a random name, keeping the original
// extension, and returns its URL.
func (s *DiskStore) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(fh.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return s.baseURL + "/" + name, nil
}
