package persistence

import (
	"context"
	"errors"
	"fmt"

	"user_file_service/internal/domain/files"
	"user_file_service/internal/infrastructure/persistence/models"
	"user_file_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormFileRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormFileRepository creates a new GORM-based FileRepository implementation
func NewGormFileRepository(db *gorm.DB, logger logger.Logger) (files.FileRepository, error) {
	return &gormFileRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormFileRepository) Create(ctx context.Context, meta *files.FileMeta) error {
	// Validate domain entity (business rules)
	if err := meta.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// Convert to GORM model
	model := &models.FileModel{}
	model.FromDomain(meta)

	// Persist to database. A non-null UserID pointing at a missing user
	// violates the foreign key here and rolls the insert back.
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create file metadata: %w", err)
	}

	meta.ID = model.ID
	meta.UploadedAt = model.UploadedAt

	r.logger.Info("Created file metadata with id ", meta.ID, " for ", meta.Filename)
	return nil
}

func (r *gormFileRepository) FindByNameAndOwner(ctx context.Context, filename string, userID *uint) (*files.FileMeta, error) {
	dbQuery := r.db.WithContext(ctx).Where("filename = ?", filename)
	if userID == nil {
		dbQuery = dbQuery.Where("user_id IS NULL")
	} else {
		dbQuery = dbQuery.Where("user_id = ?", *userID)
	}

	// Re-uploads insert a fresh row per upload; the newest row describes the
	// blob's current content.
	var model models.FileModel
	if err := dbQuery.Order("id desc").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("file %q: %w", filename, files.ErrMetadataNotFound)
		}
		return nil, fmt.Errorf("failed to fetch file metadata: %w", err)
	}

	return model.ToDomain(), nil
}
