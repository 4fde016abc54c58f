package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/infrastructure/persistence/mappers"
	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/db"
	apperrors "ticketdesk/internal/shared/errors"
)

// TicketRepository is the GORM implementation of ticket.TicketRepository
type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(gormDB *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     gormDB,
		mapper: mappers.NewTicketMapper(),
	}
}

// Save persists a new ticket and assigns its store-generated ID
func (r *TicketRepository) Save(ctx context.Context, entity *ticket.Ticket) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map ticket to model: %w", err)
	}
	model.ID = 0

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set ticket ID: %w", err)
	}
	return nil
}

// Update persists changes to an existing ticket
func (r *TicketRepository) Update(ctx context.Context, entity *ticket.Ticket) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map ticket to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.WithContext(ctx).Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"subject":     model.Subject,
			"description": model.Description,
			"priority":    model.Priority,
			"status":      model.Status,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}

	return nil
}

// GetByID retrieves a ticket with its comments
func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		First(&model, ticketID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListByOwner retrieves all tickets owned by a user, id ascending
func (r *TicketRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*ticket.Ticket, error) {
	var ticketModels []*models.TicketModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&ticketModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets by owner: %w", err)
	}

	return r.mapper.ToEntities(ticketModels)
}

// ListAll retrieves every ticket, id ascending
func (r *TicketRepository) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	var ticketModels []*models.TicketModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).
		Order("id ASC").
		Find(&ticketModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.mapper.ToEntities(ticketModels)
}
