package models

import (
	"user_file_service/internal/domain/users"
)

// UserModel is the GORM database model for users (infrastructure concern).
// Email uniqueness is enforced by the store and surfaces as a create error,
// it is never pre-checked.
type UserModel struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"not null;type:varchar(255)"`
	Email string `gorm:"not null;uniqueIndex;type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Name = u.Name
	m.Email = u.Email
}
