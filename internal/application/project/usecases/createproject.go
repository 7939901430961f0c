package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/domain/project"
	apperrors "bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type CreateProjectCommand struct {
	OwnerID     uint
	Name        string
	Description string
	Image       string
}

type CreateProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewCreateProjectUseCase(projectRepo project.Repository, logger logger.Interface) *CreateProjectUseCase {
	return &CreateProjectUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*project.Project, error) {
	newProject, err := project.NewProject(cmd.OwnerID, cmd.Name, cmd.Description, cmd.Image)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		uc.logger.Errorw("failed to save project", "error", err)
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	uc.logger.Infow("project created", "project_id", newProject.ID(), "owner_id", cmd.OwnerID)
	return newProject, nil
}
