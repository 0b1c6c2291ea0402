package filestorage

import (
	"errors"
	"mime/multipart"
)

// Upload limits
const (
	MaxFileSize = 10 << 20 // 10 MiB
)

// AllowedMimeTypes lists the content types accepted for upload
var AllowedMimeTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"image/gif":       ".gif",
	"application/pdf": ".pdf",
}

// Upload errors
var (
	ErrNoFile          = errors.New("no file uploaded")
	ErrFileTooLarge    = errors.New("file exceeds the maximum allowed size")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrInvalidFolder   = errors.New("invalid upload folder")
)

// FileInfo represents information about a stored file
type FileInfo struct {
	Path     string // Path relative to the storage root, e.g. "courses/1f3c.png"
	URL      string // Public URL of the file
	Filename string // Original filename
	FileSize int64  // Size in bytes
	MimeType string // Detected MIME type
}

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFileWithPath stores a validated upload under a subdirectory
	SaveFileWithPath(fileHeader *multipart.FileHeader, folder string) (*FileInfo, error)

	// DeleteFile removes a stored file by its relative path
	DeleteFile(relPath string) error
}
