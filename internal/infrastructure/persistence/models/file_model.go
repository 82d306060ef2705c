package models

import (
	"time"

	"user_file_service/internal/domain/files"
)

// FileModel is the GORM database model for file metadata (infrastructure
// concern). UserID is nullable; when set, the foreign key is checked at
// insert time. Deleting the referenced user nulls the column rather than
// blocking the delete, since file rows outlive their owners.
type FileModel struct {
	ID         uint       `gorm:"primaryKey;autoIncrement"`
	Filename   string     `gorm:"not null;index;type:varchar(255)"`
	FileSize   int64      `gorm:"not null"`
	FileType   string     `gorm:"not null;type:varchar(100)"`
	UploadedAt time.Time  `gorm:"not null;autoCreateTime"`
	UserID     *uint      `gorm:"index"`
	User       *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for GORM
func (FileModel) TableName() string {
	return "files"
}

// ToDomain converts GORM model to domain entity
func (m *FileModel) ToDomain() *files.FileMeta {
	return &files.FileMeta{
		ID:         m.ID,
		Filename:   m.Filename,
		FileSize:   m.FileSize,
		FileType:   m.FileType,
		UploadedAt: m.UploadedAt,
		UserID:     m.UserID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *FileModel) FromDomain(f *files.FileMeta) {
	m.ID = f.ID
	m.Filename = f.Filename
	m.FileSize = f.FileSize
	m.FileType = f.FileType
	m.UploadedAt = f.UploadedAt
	m.UserID = f.UserID
}
