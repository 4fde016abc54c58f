// Package dto defines the application-layer data transfer objects for tickets.
package dto

import (
	"time"

	"ticketdesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID          uint         `json:"id"`
	Subject     string       `json:"subject"`
	Description string       `json:"description"`
	Priority    string       `json:"priority"`
	Status      string       `json:"status"`
	OwnerID     uint         `json:"owner_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Comments    []CommentDTO `json:"comments"`
}

type CommentDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	AuthorID  uint      `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	commentDTOs := make([]CommentDTO, 0, len(t.Comments()))
	for _, c := range t.Comments() {
		commentDTOs = append(commentDTOs, ToCommentDTO(c))
	}

	return &TicketDTO{
		ID:          t.ID(),
		Subject:     t.Subject(),
		Description: t.Description(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		OwnerID:     t.OwnerID(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		Comments:    commentDTOs,
	}
}

func ToCommentDTO(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket) []*TicketDTO {
	dtos := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, ToTicketDTO(t))
	}
	return dtos
}
