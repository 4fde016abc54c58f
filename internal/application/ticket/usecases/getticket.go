package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/authorization"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID    uint
	RequesterID uint
	Role        authorization.UserRole
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	if !authorization.CanAccessResourceByOwnerID(query.RequesterID, query.Role, t.OwnerID()) {
		uc.logger.Warnw("ticket access denied",
			"ticket_id", query.TicketID,
			"requester_id", query.RequesterID,
		)
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	return dto.ToTicketDTO(t), nil
}
