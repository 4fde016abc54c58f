// Package models defines the database persistence models.
package models

import (
	"time"

	"ticketdesk/internal/shared/constants"
)

// UserModel is the GORM persistence model for users
type UserModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"uniqueIndex;size:50;not null"`
	Email        string    `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	Role         string    `gorm:"size:20;not null;default:'user'"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for the user model
func (UserModel) TableName() string {
	return constants.TableUsers
}
