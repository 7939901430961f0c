package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/domain/project"
	apperrors "bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type UpdateProjectCommand struct {
	ProjectID   uint
	CallerID    uint
	Name        string
	Description string
	Image       string
}

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewUpdateProjectUseCase(projectRepo project.Repository, logger logger.Interface) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, cmd UpdateProjectCommand) (*project.Project, error) {
	existing, err := uc.projectRepo.FindByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "error", err, "project_id", cmd.ProjectID)
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("project not found")
	}
	if !existing.IsOwnedBy(cmd.CallerID) {
		return nil, apperrors.NewForbiddenError("only the project owner can update the project")
	}

	existing.ApplyPatch(cmd.Name, cmd.Description, cmd.Image)

	if err := uc.projectRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update project", "error", err, "project_id", cmd.ProjectID)
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	uc.logger.Infow("project updated", "project_id", cmd.ProjectID)
	return existing, nil
}
