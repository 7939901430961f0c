package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/domain/project"
	"bugtrail/internal/shared/logger"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewListProjectsUseCase(projectRepo project.Repository, logger logger.Interface) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: projectRepo, logger: logger}
}

// Execute lists the projects owned by the caller.
func (uc *ListProjectsUseCase) Execute(ctx context.Context, ownerID uint) ([]*project.Project, error) {
	projects, err := uc.projectRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}
