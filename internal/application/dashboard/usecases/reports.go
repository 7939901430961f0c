package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/domain/dashboard"
	"bugtrail/internal/domain/project"
	apperrors "bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

const (
	latestTicketLimit = 5
	reportWindowDays  = 7
)

// GetReportsUseCase serves the read-only project dashboard queries.
type GetReportsUseCase struct {
	dashboardRepo dashboard.Repository
	projectRepo   project.Repository
	logger        logger.Interface
}

func NewGetReportsUseCase(
	dashboardRepo dashboard.Repository,
	projectRepo project.Repository,
	logger logger.Interface,
) *GetReportsUseCase {
	return &GetReportsUseCase{
		dashboardRepo: dashboardRepo,
		projectRepo:   projectRepo,
		logger:        logger,
	}
}

func (uc *GetReportsUseCase) requireProject(ctx context.Context, projectID uint) error {
	existing, err := uc.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "error", err, "project_id", projectID)
		return fmt.Errorf("failed to load project: %w", err)
	}
	if existing == nil {
		return apperrors.NewNotFoundError("project not found")
	}
	return nil
}

func (uc *GetReportsUseCase) StatusReport(ctx context.Context, projectID uint) (*dashboard.StatusReport, error) {
	if err := uc.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	report, err := uc.dashboardRepo.CountByStatus(ctx, projectID)
	if err != nil {
		uc.logger.Errorw("failed to build status report", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to build status report: %w", err)
	}
	return report, nil
}

func (uc *GetReportsUseCase) PriorityReport(ctx context.Context, projectID uint) (*dashboard.PriorityReport, error) {
	if err := uc.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	report, err := uc.dashboardRepo.CountByPriority(ctx, projectID)
	if err != nil {
		uc.logger.Errorw("failed to build priority report", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to build priority report: %w", err)
	}
	return report, nil
}

func (uc *GetReportsUseCase) LatestTickets(ctx context.Context, projectID uint) ([]dashboard.TicketSummary, error) {
	if err := uc.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	latest, err := uc.dashboardRepo.LatestTickets(ctx, projectID, latestTicketLimit)
	if err != nil {
		uc.logger.Errorw("failed to load latest tickets", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to load latest tickets: %w", err)
	}
	return latest, nil
}

func (uc *GetReportsUseCase) TopCommentors(ctx context.Context, projectID uint) ([]dashboard.CommentorCount, error) {
	if err := uc.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	commentors, err := uc.dashboardRepo.TopCommentors(ctx, projectID)
	if err != nil {
		uc.logger.Errorw("failed to rank commentors", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to rank commentors: %w", err)
	}
	return commentors, nil
}

func (uc *GetReportsUseCase) TicketsPerDay(ctx context.Context, projectID uint) ([]dashboard.DayCount, error) {
	if err := uc.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	days, err := uc.dashboardRepo.TicketsPerDay(ctx, projectID, reportWindowDays)
	if err != nil {
		uc.logger.Errorw("failed to count tickets per day", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to count tickets per day: %w", err)
	}
	return days, nil
}
