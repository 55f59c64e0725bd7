package model

import (
	"time"

	"github.com/google/uuid"
)

// ResetTokenModel mirrors the 'password_reset_tokens' table. Rows are
// never deleted; consumed and superseded tokens stay for audit with
// used = true.
type ResetTokenModel struct {
	ID        uint      `gorm:"primaryKey"`
	Token     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	StudentID uint      `gorm:"index;not null"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (ResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
