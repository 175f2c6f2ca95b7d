package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"content-portal-api/config"
	"content-portal-api/models"
	"content-portal-api/services"
)

// Upload size caps. Audio recordings run larger than photos and reference
// documents.
const (
	maxAudioUploadSize = int64(50 * 1024 * 1024) // 50MB
	maxFileUploadSize  = int64(10 * 1024 * 1024) // 10MB
)

var (
	allowedAudioExts = map[string]bool{
		".wav":  true,
		".mp3":  true,
		".m4a":  true,
		".webm": true,
	}
	allowedPhotoExts = map[string]bool{
		".png":  true,
		".jpg":  true,
		".jpeg": true,
		".gif":  true,
	}
	allowedReferenceExts = map[string]bool{
		".pdf":  true,
		".doc":  true,
		".docx": true,
		".ppt":  true,
		".pptx": true,
		".png":  true,
		".jpg":  true,
		".jpeg": true,
		".mp4":  true,
		".mov":  true,
	}
)

// errInvalidUpload marks client-side upload problems (bad type, too large) so
// handlers can answer 400 instead of 500.
var errInvalidUpload = errors.New("invalid upload")

// saveUpload validates and stores one uploaded file under relDir, records the
// file_uploads audit row and returns the stored blob. A failed audit row
// aborts the upload: the row is what lets a reconciliation sweep find the
// blob later, so an untracked blob must not back a record.
func saveUpload(store services.Storage, file *multipart.FileHeader, relDir string, allowed map[string]bool, maxSize int64, userID int, recordID string) (services.StoredFile, error) {
	if file.Size > maxSize {
		return services.StoredFile{}, fmt.Errorf("%w: file %s exceeds %dMB limit", errInvalidUpload, file.Filename, maxSize/(1024*1024))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowed[ext] {
		return services.StoredFile{}, fmt.Errorf("%w: file type %s not allowed", errInvalidUpload, ext)
	}

	stored, err := store.Save(file, relDir)
	if err != nil {
		return services.StoredFile{}, err
	}

	now := time.Now()
	audit := models.FileUpload{
		RecordID:     recordID,
		OriginalName: stored.OriginalName,
		StoredPath:   stored.StoredPath,
		PublicURL:    stored.PublicURL,
		FileSize:     stored.Size,
		MimeType:     stored.MimeType,
		UploadedBy:   userID,
		UploadedAt:   now,
		CreateAt:     now,
		UpdateAt:     now,
	}
	if err := config.DB.Create(&audit).Error; err != nil {
		return services.StoredFile{}, err
	}

	return stored, nil
}
