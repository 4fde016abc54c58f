package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	apperrors "ticketdesk/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	tests := []struct {
		name    string
		command CreateTicketCommand
	}{
		{
			name: "create high priority ticket",
			command: CreateTicketCommand{
				Subject:     "System crashes on login",
				Description: "Users experiencing crashes when attempting to login",
				Priority:    vo.PriorityHigh.String(),
				OwnerID:     1,
			},
		},
		{
			name: "create low priority ticket",
			command: CreateTicketCommand{
				Subject:     "Invoice clarification needed",
				Description: "Need clarification on last month's invoice",
				Priority:    vo.PriorityLow.String(),
				OwnerID:     2,
			},
		},
		{
			name: "priority is parsed case-insensitively",
			command: CreateTicketCommand{
				Subject:     "Uppercase priority",
				Description: "Priority arrives in uppercase from older clients",
				Priority:    "MEDIUM",
				OwnerID:     3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var savedTicket *ticket.Ticket
			mockRepo := &mockTicketRepository{
				SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
					if err := tkt.SetID(100); err != nil {
						return err
					}
					savedTicket = tkt
					return nil
				},
			}

			useCase := NewCreateTicketUseCase(mockRepo, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, uint(100), result.TicketID)
			assert.Equal(t, tt.command.Subject, result.Subject)
			assert.Equal(t, vo.StatusOpen.String(), result.Status)
			assert.Equal(t, tt.command.OwnerID, result.OwnerID)

			require.NotNil(t, savedTicket)
			assert.Equal(t, vo.StatusOpen, savedTicket.Status())
		})
	}
}

func TestCreateTicketUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		command CreateTicketCommand
	}{
		{
			name: "missing subject",
			command: CreateTicketCommand{
				Description: "desc",
				Priority:    vo.PriorityLow.String(),
				OwnerID:     1,
			},
		},
		{
			name: "missing description",
			command: CreateTicketCommand{
				Subject:  "subject",
				Priority: vo.PriorityLow.String(),
				OwnerID:  1,
			},
		},
		{
			name: "invalid priority",
			command: CreateTicketCommand{
				Subject:     "subject",
				Description: "desc",
				Priority:    "urgent",
				OwnerID:     1,
			},
		},
		{
			name: "missing owner",
			command: CreateTicketCommand{
				Subject:     "subject",
				Description: "desc",
				Priority:    vo.PriorityLow.String(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mockTicketRepository{
				SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
					t.Fatal("Save should not be called")
					return nil
				},
			}

			useCase := NewCreateTicketUseCase(mockRepo, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)

			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
		})
	}
}

func TestCreateTicketUseCase_Execute_RepositoryError(t *testing.T) {
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			return errors.New("database unavailable")
		},
	}

	useCase := NewCreateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Subject:     "subject",
		Description: "desc",
		Priority:    vo.PriorityMedium.String(),
		OwnerID:     1,
	})

	require.Error(t, err)
	assert.Nil(t, result)
}
