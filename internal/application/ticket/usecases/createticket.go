package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/domain/project"
	"bugtrail/internal/domain/ticket"
	vo "bugtrail/internal/domain/ticket/valueobjects"
	apperrors "bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type CreateTicketCommand struct {
	ProjectID   uint
	CreatorID   uint
	Title       string
	Description string
	Priority    string
}

type CreateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	projectRepo project.Repository
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	projectRepo project.Repository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*ticket.Ticket, error) {
	existing, err := uc.projectRepo.FindByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "error", err, "project_id", cmd.ProjectID)
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("project not found")
	}

	newTicket, err := ticket.NewTicket(cmd.ProjectID, cmd.CreatorID, cmd.Title, cmd.Description, vo.Priority(cmd.Priority))
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err, "project_id", cmd.ProjectID)
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(),
		"project_id", cmd.ProjectID,
		"index", newTicket.Index(),
	)
	return newTicket, nil
}
