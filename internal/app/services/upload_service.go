package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/filestorage"
)

// ReceiptFolder holds vodafone payment receipts
const ReceiptFolder = "receipts"

// UploadService stores uploads on disk and records them
type UploadService struct {
	storage  filestorage.FileStorage
	fileRepo FileStore
	logger   zerolog.Logger
}

// NewUploadService creates a new UploadService
func NewUploadService(storage filestorage.FileStorage, fileRepo FileStore, logger zerolog.Logger) *UploadService {
	return &UploadService{storage: storage, fileRepo: fileRepo, logger: logger}
}

// Upload validates and stores fileHeader under folder on behalf of userID
func (s *UploadService) Upload(ctx context.Context, fileHeader *multipart.FileHeader, folder string, userID int64) (*dto.UploadResponse, error) {
	info, err := s.storage.SaveFileWithPath(fileHeader, folder)
	if err != nil {
		switch {
		case errors.Is(err, filestorage.ErrNoFile):
			return nil, apperrors.NewValidationError("file is required")
		case errors.Is(err, filestorage.ErrFileTooLarge):
			return nil, apperrors.NewValidationError("File is too large. The maximum size is 10 MB")
		case errors.Is(err, filestorage.ErrUnsupportedType):
			return nil, apperrors.NewValidationError("Only jpeg, png, webp, gif and pdf files are allowed")
		case errors.Is(err, filestorage.ErrInvalidFolder):
			return nil, apperrors.NewValidationError("Invalid folder name")
		}
		s.logger.Error().Err(err).Str("folder", folder).Msg("Failed to store upload")
		return nil, err
	}

	record := &models.File{
		FileName:     info.Filename,
		FilePath:     info.Path,
		FileURL:      info.URL,
		FileSize:     info.FileSize,
		FileType:     info.MimeType,
		ResourceType: models.FileTypeForFolder(folder),
		UploadedBy:   userID,
	}
	id, err := s.fileRepo.Create(ctx, record)
	if err != nil {
		if delErr := s.storage.DeleteFile(info.Path); delErr != nil {
			s.logger.Warn().Err(delErr).Str("path", info.Path).Msg("Failed to remove orphaned upload")
		}
		return nil, err
	}

	s.logger.Info().Int64("fileId", id).Str("path", info.Path).Int64("userId", userID).Msg("File uploaded")
	return &dto.UploadResponse{ID: id, URL: info.URL, Path: info.Path}, nil
}

// UploadReceipt stores a vodafone payment receipt
func (s *UploadService) UploadReceipt(ctx context.Context, fileHeader *multipart.FileHeader, userID int64) (*dto.UploadResponse, error) {
	return s.Upload(ctx, fileHeader, ReceiptFolder, userID)
}
