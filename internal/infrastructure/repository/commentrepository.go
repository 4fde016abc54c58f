package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/infrastructure/persistence/mappers"
	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/db"
)

// CommentRepository is the GORM implementation of ticket.CommentRepository
type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(gormDB *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     gormDB,
		mapper: mappers.NewTicketMapper(),
	}
}

// Save persists a new comment; the store assigns ID and created-at
func (r *CommentRepository) Save(ctx context.Context, entity *ticket.Comment) error {
	model, err := r.mapper.CommentToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map comment to model: %w", err)
	}
	model.ID = 0

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set comment ID: %w", err)
	}
	entity.SetCreatedAt(model.CreatedAt)
	return nil
}

// ListByTicketID retrieves a ticket's comments in created-at order
func (r *CommentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var commentModels []*models.CommentModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&commentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return r.mapper.CommentsToEntities(commentModels)
}
