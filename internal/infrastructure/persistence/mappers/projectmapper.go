package mappers

import (
	"bugtrail/internal/domain/project"
	"bugtrail/internal/infrastructure/persistence/models"
)

// ProjectMapper handles the conversion between Project domain entities and persistence models.
type ProjectMapper interface {
	ToModel(p *project.Project) *models.ProjectModel

	// ToDomain converts a project persistence model to a domain entity.
	// Supervisor ids must already be ordered by position.
	ToDomain(model *models.ProjectModel, supervisors []uint) (*project.Project, error)
}

type ProjectMapperImpl struct{}

func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) ToModel(p *project.Project) *models.ProjectModel {
	return &models.ProjectModel{
		ID:          p.ID(),
		OwnerID:     p.OwnerID(),
		Name:        p.Name(),
		Description: p.Description(),
		Image:       p.Image(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func (m *ProjectMapperImpl) ToDomain(model *models.ProjectModel, supervisors []uint) (*project.Project, error) {
	return project.ReconstructProject(
		model.ID,
		model.OwnerID,
		model.Name,
		model.Description,
		model.Image,
		supervisors,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
