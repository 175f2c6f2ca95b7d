package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"content-portal-api/utils"
)

// Storage is the blob-store contract the submission pipeline consumes: write
// a file under a relative path, get back a publicly resolvable URL.
type Storage interface {
	Save(file *multipart.FileHeader, relDir string) (StoredFile, error)
}

// StoredFile describes one persisted blob.
type StoredFile struct {
	OriginalName string
	StoredPath   string
	PublicURL    string
	Size         int64
	MimeType     string
}

// LocalStorage keeps blobs on the local filesystem under a root directory and
// serves them through the router's /files static mount.
type LocalStorage struct {
	Root    string
	BaseURL string
}

// NewLocalStorageFromEnv builds the storage adapter from UPLOAD_PATH and
// PUBLIC_BASE_URL, with the same defaults main uses.
func NewLocalStorageFromEnv() *LocalStorage {
	root := os.Getenv("UPLOAD_PATH")
	if root == "" {
		root = "./uploads"
	}
	baseURL := strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &LocalStorage{Root: root, BaseURL: baseURL}
}

// Save writes the uploaded file under root/relDir with a collision-safe
// filename and returns its public URL. relDir is expected to be namespaced by
// the owning record id.
func (s *LocalStorage) Save(file *multipart.FileHeader, relDir string) (StoredFile, error) {
	dir := filepath.Join(s.Root, filepath.FromSlash(relDir))
	if err := utils.EnsureDir(dir); err != nil {
		return StoredFile{}, fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := utils.GenerateUniqueFilename(dir, file.Filename)
	fullPath := filepath.Join(dir, filename)

	src, err := file.Open()
	if err != nil {
		return StoredFile{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(fullPath)
	if err != nil {
		return StoredFile{}, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(fullPath)
		return StoredFile{}, fmt.Errorf("failed to write file: %w", err)
	}

	return StoredFile{
		OriginalName: file.Filename,
		StoredPath:   fullPath,
		PublicURL:    s.BaseURL + "/files/" + path.Join(relDir, filename),
		Size:         file.Size,
		MimeType:     file.Header.Get("Content-Type"),
	}, nil
}
