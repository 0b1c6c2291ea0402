package repositories

import (
	"context"
	"fmt"

	"github.com/genius/elearning/internal/app/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FileRepository handles database operations for files
type FileRepository struct {
	db *pgxpool.Pool
}

// NewFileRepository creates a new FileRepository
func NewFileRepository(db *pgxpool.Pool) *FileRepository {
	return &FileRepository{db: db}
}

// Create records an uploaded file
func (r *FileRepository) Create(ctx context.Context, file *models.File) (int64, error) {
	query := `
		INSERT INTO files (file_name, file_path, file_url, file_size, file_type, resource_type, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7::bigint, 0))
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		file.FileName,
		file.FilePath,
		file.FileURL,
		file.FileSize,
		file.FileType,
		file.ResourceType,
		file.UploadedBy,
	).Scan(&file.ID, &file.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating file: %w", err)
	}

	return file.ID, nil
}
