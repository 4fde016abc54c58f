package ticket

import (
	"fmt"
	"time"

	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/biztime"
)

type Ticket struct {
	id          uint
	subject     string
	description string
	priority    vo.Priority
	status      vo.TicketStatus
	ownerID     uint
	createdAt   time.Time
	updatedAt   time.Time
	comments    []*Comment
}

func NewTicket(
	subject string,
	description string,
	priority vo.Priority,
	ownerID uint,
) (*Ticket, error) {
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 200 {
		return nil, fmt.Errorf("subject exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		subject:     subject,
		description: description,
		priority:    priority,
		status:      vo.StatusOpen,
		ownerID:     ownerID,
		createdAt:   now,
		updatedAt:   now,
		comments:    []*Comment{},
	}, nil
}

func ReconstructTicket(
	id uint,
	subject string,
	description string,
	priority vo.Priority,
	status vo.TicketStatus,
	ownerID uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Ticket{
		id:          id,
		subject:     subject,
		description: description,
		priority:    priority,
		status:      status,
		ownerID:     ownerID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		comments:    []*Comment{},
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) OwnerID() uint {
	return t.ownerID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(t.comments))
	copy(commentsCopy, t.comments)
	return commentsCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus overwrites the ticket status. Transitions between valid
// statuses are unrestricted; a closed ticket may be reopened.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	t.status = newStatus
	t.updatedAt = biztime.NowUTC()
	return nil
}

// IsOwnedBy reports whether userID is the ticket owner.
func (t *Ticket) IsOwnedBy(userID uint) bool {
	return t.ownerID == userID
}

func (t *Ticket) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}
	if comment.TicketID() != t.id {
		return fmt.Errorf("comment ticket ID mismatch")
	}

	t.comments = append(t.comments, comment)
	return nil
}

func (t *Ticket) AttachComments(comments []*Comment) {
	t.comments = comments
}
