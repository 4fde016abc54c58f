package mappers

import (
	"fmt"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket entities and persistence models
type TicketMapper interface {
	ToEntity(model *models.TicketModel) (*ticket.Ticket, error)
	ToModel(entity *ticket.Ticket) (*models.TicketModel, error)
	ToEntities(models []*models.TicketModel) ([]*ticket.Ticket, error)

	CommentToEntity(model *models.CommentModel) (*ticket.Comment, error)
	CommentToModel(entity *ticket.Comment) (*models.CommentModel, error)
	CommentsToEntities(models []*models.CommentModel) ([]*ticket.Comment, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper
type TicketMapperImpl struct{}

// NewTicketMapper creates a new ticket mapper
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *TicketMapperImpl) ToEntity(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid priority in database: %w", err)
	}

	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status in database: %w", err)
	}

	entity, err := ticket.ReconstructTicket(
		model.ID,
		model.Subject,
		model.Description,
		priority,
		status,
		model.OwnerID,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket: %w", err)
	}

	if len(model.Comments) > 0 {
		commentModels := make([]*models.CommentModel, 0, len(model.Comments))
		for i := range model.Comments {
			commentModels = append(commentModels, &model.Comments[i])
		}
		comments, err := m.CommentsToEntities(commentModels)
		if err != nil {
			return nil, err
		}
		entity.AttachComments(comments)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *TicketMapperImpl) ToModel(entity *ticket.Ticket) (*models.TicketModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.TicketModel{
		ID:          entity.ID(),
		Subject:     entity.Subject(),
		Description: entity.Description(),
		Priority:    entity.Priority().String(),
		Status:      entity.Status().String(),
		OwnerID:     entity.OwnerID(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *TicketMapperImpl) ToEntities(ticketModels []*models.TicketModel) ([]*ticket.Ticket, error) {
	entities := make([]*ticket.Ticket, 0, len(ticketModels))
	for _, model := range ticketModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// CommentToEntity converts a comment persistence model to a domain entity
func (m *TicketMapperImpl) CommentToEntity(model *models.CommentModel) (*ticket.Comment, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Content,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct comment: %w", err)
	}

	return entity, nil
}

// CommentToModel converts a comment domain entity to a persistence model
func (m *TicketMapperImpl) CommentToModel(entity *ticket.Comment) (*models.CommentModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.CommentModel{
		ID:        entity.ID(),
		TicketID:  entity.TicketID(),
		AuthorID:  entity.AuthorID(),
		Content:   entity.Content(),
		CreatedAt: entity.CreatedAt(),
	}, nil
}

// CommentsToEntities converts multiple comment models to domain entities
func (m *TicketMapperImpl) CommentsToEntities(commentModels []*models.CommentModel) ([]*ticket.Comment, error) {
	entities := make([]*ticket.Comment, 0, len(commentModels))
	for _, model := range commentModels {
		entity, err := m.CommentToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
