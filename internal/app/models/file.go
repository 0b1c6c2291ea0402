package models

import "time"

// FileType represents what an uploaded file is used for
type FileType string

const (
	FileTypeCourseImage     FileType = "COURSE_IMAGE"
	FileTypeNoteImage       FileType = "NOTE_IMAGE"
	FileTypeQuestionImage   FileType = "QUESTION_IMAGE"
	FileTypeVodafoneReceipt FileType = "VODAFONE_RECEIPT"
	FileTypeGeneral         FileType = "GENERAL"
)

// FileTypeForFolder maps an upload folder name onto a FileType
func FileTypeForFolder(folder string) FileType {
	switch folder {
	case "courses":
		return FileTypeCourseImage
	case "notes":
		return FileTypeNoteImage
	case "questions":
		return FileTypeQuestionImage
	case "receipts":
		return FileTypeVodafoneReceipt
	default:
		return FileTypeGeneral
	}
}

// File records an upload stored on disk
type File struct {
	ID           int64     `json:"id" db:"id"`
	FileName     string    `json:"fileName" db:"file_name"`
	FilePath     string    `json:"filePath" db:"file_path"`
	FileURL      string    `json:"fileUrl" db:"file_url"`
	FileSize     int64     `json:"fileSize" db:"file_size"`
	FileType     string    `json:"fileType" db:"file_type"` // MIME type
	ResourceType FileType  `json:"resourceType" db:"resource_type"`
	UploadedBy   int64     `json:"uploadedBy" db:"uploaded_by"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
