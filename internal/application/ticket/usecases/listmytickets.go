package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type ListMyTicketsQuery struct {
	OwnerID uint
}

type ListMyTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListMyTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListMyTicketsUseCase {
	return &ListMyTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListMyTicketsUseCase) Execute(ctx context.Context, query ListMyTicketsQuery) ([]*dto.TicketDTO, error) {
	if query.OwnerID == 0 {
		return nil, errors.NewValidationError("owner ID is required")
	}

	tickets, err := uc.ticketRepo.ListByOwner(ctx, query.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to list tickets by owner", "owner_id", query.OwnerID, "error", err)
		return nil, err
	}

	return dto.ToTicketDTOs(tickets), nil
}
