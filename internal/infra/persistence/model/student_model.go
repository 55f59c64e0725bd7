package model

import (
	"time"
)

// StudentModel mirrors the 'students' table. The schema is shared
// between the portal and the RADIUS-invoked authenticate command, so
// column types here are a cross-process contract.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type StudentModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(255)"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	ResetTokens []ResetTokenModel `gorm:"foreignKey:StudentID"`
}

// TableName explicitly sets the table name for GORM.
func (StudentModel) TableName() string {
	return "students"
}
