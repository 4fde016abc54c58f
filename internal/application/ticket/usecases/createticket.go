// Package usecases implements the ticket application use cases.
package usecases

import (
	"context"
	"time"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Subject     string
	Description string
	Priority    string
	OwnerID     uint
}

type CreateTicketResult struct {
	TicketID  uint
	Subject   string
	Priority  string
	Status    string
	OwnerID   uint
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "subject", cmd.Subject, "owner_id", cmd.OwnerID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newTicket, err := ticket.NewTicket(
		cmd.Subject,
		cmd.Description,
		priority,
		cmd.OwnerID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "owner_id", newTicket.OwnerID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Subject:   newTicket.Subject(),
		Priority:  newTicket.Priority().String(),
		Status:    newTicket.Status().String(),
		OwnerID:   newTicket.OwnerID(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Subject) == 0 {
		return errors.NewValidationError("subject is required")
	}

	if len(cmd.Subject) > 200 {
		return errors.NewValidationError("subject exceeds maximum length of 200 characters")
	}

	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}

	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}

	if cmd.OwnerID == 0 {
		return errors.NewValidationError("owner ID is required")
	}

	if _, err := vo.NewPriority(cmd.Priority); err != nil {
		return errors.NewValidationError("invalid priority")
	}

	return nil
}
