package models

import "time"

// FileUpload is the audit row written for every blob saved by the storage
// layer: one per podcast recording, photo or production reference file.
type FileUpload struct {
	FileID       int        `gorm:"primaryKey;column:file_id" json:"file_id"`
	RecordID     string     `gorm:"column:record_id" json:"record_id"`
	OriginalName string     `gorm:"column:original_name" json:"original_name"`
	StoredPath   string     `gorm:"column:stored_path" json:"stored_path"`
	PublicURL    string     `gorm:"column:public_url" json:"public_url"`
	FileSize     int64      `gorm:"column:file_size" json:"file_size"`
	MimeType     string     `gorm:"column:mime_type" json:"mime_type"`
	UploadedBy   int        `gorm:"column:uploaded_by" json:"uploaded_by"`
	UploadedAt   time.Time  `gorm:"column:uploaded_at" json:"uploaded_at"`
	CreateAt     time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt     time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (FileUpload) TableName() string {
	return "file_uploads"
}

// IsValidImageType reports whether the upload is an accepted photo format.
func (f *FileUpload) IsValidImageType() bool {
	validTypes := []string{"image/jpeg", "image/jpg", "image/png", "image/gif"}
	for _, validType := range validTypes {
		if f.MimeType == validType {
			return true
		}
	}
	return false
}

// IsValidAudioType reports whether the upload is an accepted recording format.
func (f *FileUpload) IsValidAudioType() bool {
	validTypes := []string{"audio/wav", "audio/x-wav", "audio/mpeg", "audio/mp4", "audio/webm"}
	for _, validType := range validTypes {
		if f.MimeType == validType {
			return true
		}
	}
	return false
}

func (f *FileUpload) GetFileSizeInMB() float64 {
	return float64(f.FileSize) / (1024 * 1024)
}
