package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/domain/project"
	"bugtrail/internal/domain/ticket"
	apperrors "bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type ListTicketsUseCase struct {
	ticketRepo  ticket.TicketRepository
	projectRepo project.Repository
	logger      logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	projectRepo project.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo:  ticketRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, projectID uint) ([]*ticket.Ticket, error) {
	existing, err := uc.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("project not found")
	}

	tickets, err := uc.ticketRepo.FindByProject(ctx, projectID)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return tickets, nil
}
