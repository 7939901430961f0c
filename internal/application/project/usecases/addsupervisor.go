package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/domain/project"
	"bugtrail/internal/domain/user"
	apperrors "bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type AddSupervisorCommand struct {
	ProjectID uint
	CallerID  uint
	UserID    uint
}

type AddSupervisorUseCase struct {
	projectRepo project.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewAddSupervisorUseCase(
	projectRepo project.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *AddSupervisorUseCase {
	return &AddSupervisorUseCase{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Execute appends the user to the project's supervisor list. Adding a user
// who is already a supervisor is a conflict, not a no-op.
func (uc *AddSupervisorUseCase) Execute(ctx context.Context, cmd AddSupervisorCommand) error {
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

	supervisor, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "error", err, "user_id", cmd.UserID)
		return fmt.Errorf("failed to load user: %w", err)
	}
	if supervisor == nil {
		return apperrors.NewNotFoundError("user not found")
	}

	if err := existing.AddSupervisor(cmd.UserID); err != nil {
		return apperrors.NewConflictError(err.Error())
	}

	if err := uc.projectRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update project", "error", err, "project_id", cmd.ProjectID)
		return fmt.Errorf("failed to update project: %w", err)
	}

	uc.logger.Infow("supervisor added", "project_id", cmd.ProjectID, "user_id", cmd.UserID)
	return nil
}
