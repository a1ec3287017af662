package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 assigned by the repository.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	PasswordHash *string   `gorm:"type:varchar(255)"`
	AvatarURL    *string   `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
