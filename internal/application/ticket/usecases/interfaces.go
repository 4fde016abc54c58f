package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListMyTicketsExecutor interface {
	Execute(ctx context.Context, query ListMyTicketsQuery) ([]*dto.TicketDTO, error)
}

type ListAllTicketsExecutor interface {
	Execute(ctx context.Context, query ListAllTicketsQuery) ([]*dto.TicketDTO, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}
