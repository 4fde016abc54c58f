package usecases

import (
	"context"
	"time"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/db"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID uint
	AuthorID uint
	Content  string
}

type AddCommentResult struct {
	CommentID uint
	TicketID  uint
	AuthorID  uint
	Content   string
	CreatedAt time.Time
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	txMgr       *db.TransactionManager
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.AuthorID == 0 {
		return nil, errors.NewValidationError("author ID is required")
	}

	// Comments are append-only and never mutate the ticket row. The
	// existence check and the insert share one transaction so the
	// referenced ticket cannot vanish between the two.
	var comment *ticket.Comment
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
			return err
		}

		// Only the ticket owner may comment
		if !t.IsOwnedBy(cmd.AuthorID) {
			uc.logger.Warnw("comment denied", "ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)
			return errors.NewForbiddenError("you do not have access to this ticket")
		}

		c, err := ticket.NewComment(cmd.TicketID, cmd.AuthorID, cmd.Content)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.commentRepo.Save(txCtx, c); err != nil {
			uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
			return err
		}

		comment = c
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("comment added", "comment_id", comment.ID(), "ticket_id", cmd.TicketID)

	return &AddCommentResult{
		CommentID: comment.ID(),
		TicketID:  comment.TicketID(),
		AuthorID:  comment.AuthorID(),
		Content:   comment.Content(),
		CreatedAt: comment.CreatedAt(),
	}, nil
}
