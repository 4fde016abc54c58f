package models

import (
	"time"

	"ticketdesk/internal/shared/constants"
)

// TicketModel is the GORM persistence model for tickets
type TicketModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Subject     string    `gorm:"size:200;not null"`
	Description string    `gorm:"type:text;not null"`
	Priority    string    `gorm:"size:20;not null"`
	Status      string    `gorm:"size:20;not null;index"`
	OwnerID     uint      `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	Comments []CommentModel `gorm:"foreignKey:TicketID"`
}

// TableName returns the table name for the ticket model
func (TicketModel) TableName() string {
	return constants.TableTickets
}

// CommentModel is the GORM persistence model for ticket comments
type CommentModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	TicketID  uint      `gorm:"not null;index"`
	AuthorID  uint      `gorm:"not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName returns the table name for the comment model
func (CommentModel) TableName() string {
	return constants.TableTicketComments
}
