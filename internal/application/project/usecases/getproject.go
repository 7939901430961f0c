package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/domain/project"
	apperrors "bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type GetProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewGetProjectUseCase(projectRepo project.Repository, logger logger.Interface) *GetProjectUseCase {
	return &GetProjectUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, projectID uint) (*project.Project, error) {
	existing, err := uc.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("project not found")
	}
	return existing, nil
}
