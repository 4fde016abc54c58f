package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/logger"
)

type ListAllTicketsQuery struct{}

type ListAllTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListAllTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListAllTicketsUseCase {
	return &ListAllTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListAllTicketsUseCase) Execute(ctx context.Context, _ ListAllTicketsQuery) ([]*dto.TicketDTO, error) {
	tickets, err := uc.ticketRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list all tickets", "error", err)
		return nil, err
	}

	return dto.ToTicketDTOs(tickets), nil
}
