package model

import (
	"time"

	"github.com/google/uuid"
)

// OtpModel mirrors the 'otps' table. Email is indexed but not unique.
type OtpModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);index:idx_otps_email_code,priority:1;not null"`
	Code      string    `gorm:"type:char(6);index:idx_otps_email_code,priority:2;not null"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index:idx_otps_expires_at;not null"`
}

// TableName explicitly sets the table name for GORM.
func (OtpModel) TableName() string {
	return "otps"
}
