package model

import (
	"time"

	"github.com/google/uuid"
)

// ResetTicketModel mirrors the 'password_reset_tickets' table.
type ResetTicketModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);index;not null"`
	TokenHash string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ResetTicketModel) TableName() string {
	return "password_reset_tickets"
}
