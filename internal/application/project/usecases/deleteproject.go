package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/domain/project"
	apperrors "bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type DeleteProjectCommand struct {
	ProjectID uint
	CallerID  uint
}

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewDeleteProjectUseCase(projectRepo project.Repository, logger logger.Interface) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{projectRepo: projectRepo, logger: logger}
}

// Execute deletes the project row and its supervisor memberships. Tickets and
// comments under the project are left in place.
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, cmd DeleteProjectCommand) error {
	existing, err := uc.projectRepo.FindByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "error", err, "project_id", cmd.ProjectID)
		return fmt.Errorf("failed to load project: %w", err)
	}
	if existing == nil {
		return apperrors.NewNotFoundError("project not found")
	}
	if !existing.IsOwnedBy(cmd.CallerID) {
		return apperrors.NewForbiddenError("only the project owner can delete the project")
	}

	if err := uc.projectRepo.Delete(ctx, cmd.ProjectID); err != nil {
		uc.logger.Errorw("failed to delete project", "error", err, "project_id", cmd.ProjectID)
		return fmt.Errorf("failed to delete project: %w", err)
	}

	uc.logger.Infow("project deleted", "project_id", cmd.ProjectID)
	return nil
}
