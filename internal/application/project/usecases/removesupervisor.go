package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/domain/project"
	apperrors "bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type RemoveSupervisorCommand struct {
	ProjectID uint
	CallerID  uint
	UserID    uint
}

type RemoveSupervisorUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewRemoveSupervisorUseCase(projectRepo project.Repository, logger logger.Interface) *RemoveSupervisorUseCase {
	return &RemoveSupervisorUseCase{projectRepo: projectRepo, logger: logger}
}

// Execute removes the user from the supervisor list. Removing a user who is
// not a supervisor is an error, mirroring the non-idempotent add.
func (uc *RemoveSupervisorUseCase) Execute(ctx context.Context, cmd RemoveSupervisorCommand) error {
	existing, err := uc.projectRepo.FindByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "error", err, "project_id", cmd.ProjectID)
		return fmt.Errorf("failed to load project: %w", err)
	}
	if existing == nil {
		return apperrors.NewNotFoundError("project not found")
	}
	if !existing.IsOwnedBy(cmd.CallerID) {
		return apperrors.NewForbiddenError("only the project owner can manage supervisors")
	}

	if err := existing.RemoveSupervisor(cmd.UserID); err != nil {
		return apperrors.NewNotFoundError(err.Error())
	}

	if err := uc.projectRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update project", "error", err, "project_id", cmd.ProjectID)
		return fmt.Errorf("failed to update project: %w", err)
	}

	uc.logger.Infow("supervisor removed", "project_id", cmd.ProjectID, "user_id", cmd.UserID)
	return nil
}
