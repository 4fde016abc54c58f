package ticket

import (
	"fmt"
	"time"
)

// Comment is an immutable remark attached to a ticket. The created-at
// timestamp is assigned by the persistence layer at insert time so that
// ordering stays consistent across comments added in the same request burst.
type Comment struct {
	id        uint
	ticketID  uint
	authorID  uint
	content   string
	createdAt time.Time
}

func NewComment(
	ticketID uint,
	authorID uint,
	content string,
) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if len(content) > 5000 {
		return nil, fmt.Errorf("content exceeds maximum length of 5000 characters")
	}

	return &Comment{
		ticketID: ticketID,
		authorID: authorID,
		content:  content,
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	authorID uint,
	content string,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		authorID:  authorID,
		content:   content,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

// SetID records the store-generated identity after the first save.
func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

// SetCreatedAt records the store-assigned creation timestamp after insert.
func (c *Comment) SetCreatedAt(t time.Time) {
	c.createdAt = t
}
