package ticket

import "context"

type TicketRepository interface {
	// Save persists a new ticket and assigns its store-generated ID.
	Save(ctx context.Context, ticket *Ticket) error

	// Update persists changes to an existing ticket.
	Update(ctx context.Context, ticket *Ticket) error

	// GetByID retrieves a ticket with its comments.
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)

	// ListByOwner retrieves all tickets owned by a user, in stable
	// id-ascending order.
	ListByOwner(ctx context.Context, ownerID uint) ([]*Ticket, error)

	// ListAll retrieves every ticket, unfiltered.
	ListAll(ctx context.Context) ([]*Ticket, error)
}

type CommentRepository interface {
	// Save persists a new comment; the store assigns ID and created-at.
	Save(ctx context.Context, comment *Comment) error

	// ListByTicketID retrieves a ticket's comments in created-at order.
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}
