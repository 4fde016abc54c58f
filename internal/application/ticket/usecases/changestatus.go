package usecases

import (
	"context"
	"time"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/authorization"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  uint
	NewStatus string
	ActorID   uint
	ActorRole authorization.UserRole
}

type ChangeStatusResult struct {
	TicketID  uint
	OldStatus string
	NewStatus string
	UpdatedAt time.Time
}

type ChangeStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case",
		"ticket_id", cmd.TicketID,
		"new_status", cmd.NewStatus,
		"actor_id", cmd.ActorID,
	)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if !authorization.CanAccessResourceByOwnerID(cmd.ActorID, cmd.ActorRole, t.OwnerID()) {
		uc.logger.Warnw("status change denied",
			"ticket_id", cmd.TicketID,
			"actor_id", cmd.ActorID,
		)
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	oldStatus := t.Status()

	if err := t.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(),
		"old_status", oldStatus.String(),
		"new_status", t.Status().String(),
	)

	return &ChangeStatusResult{
		TicketID:  t.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: t.Status().String(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}
