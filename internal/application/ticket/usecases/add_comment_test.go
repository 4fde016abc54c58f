package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/ticket"
	apperrors "ticketdesk/internal/shared/errors"
)

func TestAddCommentUseCase_Execute(t *testing.T) {
	t.Run("owner adds a comment without touching the ticket row", func(t *testing.T) {
		stored := newStoredTicket(t, 20, 5)
		var saved *ticket.Comment
		mockTickets := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return stored, nil
			},
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				t.Fatal("comments are append-only; the ticket row must not be updated")
				return nil
			},
		}
		mockComments := &mockCommentRepository{
			SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
				if err := c.SetID(7); err != nil {
					return err
				}
				c.SetCreatedAt(time.Now().UTC())
				saved = c
				return nil
			},
		}

		useCase := NewAddCommentUseCase(mockTickets, mockComments, newTestTxManager(t), &mockLogger{})
		result, err := useCase.Execute(context.Background(), AddCommentCommand{
			TicketID: 20,
			AuthorID: 5,
			Content:  "still happening after reboot",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(7), result.CommentID)
		assert.Equal(t, uint(20), result.TicketID)
		assert.Equal(t, uint(5), result.AuthorID)
		assert.False(t, result.CreatedAt.IsZero())

		require.NotNil(t, saved)
		assert.Equal(t, "still happening after reboot", saved.Content())
	})

	t.Run("non-owner is forbidden even as admin", func(t *testing.T) {
		stored := newStoredTicket(t, 21, 5)
		mockTickets := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return stored, nil
			},
		}
		mockComments := &mockCommentRepository{
			SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
				t.Fatal("Save should not be called")
				return nil
			},
		}

		useCase := NewAddCommentUseCase(mockTickets, mockComments, newTestTxManager(t), &mockLogger{})
		_, err := useCase.Execute(context.Background(), AddCommentCommand{
			TicketID: 21,
			AuthorID: 99,
			Content:  "admin note",
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsForbiddenError(err))
	})

	t.Run("empty content is rejected", func(t *testing.T) {
		stored := newStoredTicket(t, 22, 5)
		mockTickets := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return stored, nil
			},
		}

		useCase := NewAddCommentUseCase(mockTickets, &mockCommentRepository{}, newTestTxManager(t), &mockLogger{})
		_, err := useCase.Execute(context.Background(), AddCommentCommand{
			TicketID: 22,
			AuthorID: 5,
			Content:  "",
		})

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	})

	t.Run("ticket not found", func(t *testing.T) {
		mockTickets := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return nil, apperrors.NewNotFoundError("ticket not found")
			},
		}

		useCase := NewAddCommentUseCase(mockTickets, &mockCommentRepository{}, newTestTxManager(t), &mockLogger{})
		_, err := useCase.Execute(context.Background(), AddCommentCommand{
			TicketID: 404,
			AuthorID: 5,
			Content:  "hello?",
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}
