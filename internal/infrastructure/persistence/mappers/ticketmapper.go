package mappers

import (
	"bugtrail/internal/domain/ticket"
	vo "bugtrail/internal/domain/ticket/valueobjects"
	"bugtrail/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		ProjectID:   t.ProjectID(),
		CreatorID:   t.CreatorID(),
		Title:       t.Title(),
		Description: t.Description(),
		Priority:    t.Priority().String(),
		Closed:      t.IsClosed(),
		TicketIndex: t.Index(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.ProjectID,
		model.CreatorID,
		model.Title,
		model.Description,
		vo.Priority(model.Priority),
		model.Closed,
		model.TicketIndex,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		ProjectID: c.ProjectID(),
		CreatorID: c.CreatorID(),
		Text:      c.Text(),
		CreatedAt: c.CreatedAt(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.ProjectID,
		model.CreatorID,
		model.Text,
		model.CreatedAt,
	)
}
