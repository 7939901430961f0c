package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bugtrail/internal/domain/project"
	"bugtrail/internal/infrastructure/persistence/mappers"
	"bugtrail/internal/infrastructure/persistence/models"
	db "bugtrail/internal/shared/db"
)

type ProjectRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{
		db:     db,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *ProjectRepository) Save(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	return p.SetID(model.ID)
}

// Update persists project fields and replaces the supervisor membership so
// the stored positions always match the aggregate's insertion order.
func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&models.ProjectModel{}).
			Where("id = ?", model.ID).
			Updates(map[string]interface{}{
				"name":        model.Name,
				"description": model.Description,
				"image":       model.Image,
				"updated_at":  model.UpdatedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update project: %w", result.Error)
		}

		if err := tx.
			Where("project_id = ?", model.ID).
			Delete(&models.ProjectSupervisorModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear supervisors: %w", err)
		}

		for i, userID := range p.Supervisors() {
			row := models.ProjectSupervisorModel{
				ProjectID: model.ID,
				UserID:    userID,
				Position:  i,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to save supervisor: %w", err)
			}
		}

		return nil
	})
}

func (r *ProjectRepository) Delete(ctx context.Context, projectID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.ProjectModel{}, projectID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete project: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("project not found")
		}

		// Membership rows go with the project. Tickets and comments stay.
		if err := tx.
			Where("project_id = ?", projectID).
			Delete(&models.ProjectSupervisorModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete supervisors: %w", err)
		}

		return nil
	})
}

func (r *ProjectRepository) FindByID(ctx context.Context, projectID uint) (*project.Project, error) {
	var model models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	supervisors, err := r.loadSupervisors(tx, projectID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, supervisors)
}

func (r *ProjectRepository) FindByOwner(ctx context.Context, ownerID uint) ([]*project.Project, error) {
	var projectModels []models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&projectModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*project.Project, len(projectModels))
	for i, model := range projectModels {
		supervisors, err := r.loadSupervisors(tx, model.ID)
		if err != nil {
			return nil, err
		}
		p, err := r.mapper.ToDomain(&model, supervisors)
		if err != nil {
			return nil, err
		}
		projects[i] = p
	}

	return projects, nil
}

func (r *ProjectRepository) loadSupervisors(tx *gorm.DB, projectID uint) ([]uint, error) {
	var rows []models.ProjectSupervisorModel
	if err := tx.
		Where("project_id = ?", projectID).
		Order("position ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load supervisors: %w", err)
	}

	ids := make([]uint, len(rows))
	for i, row := range rows {
		ids[i] = row.UserID
	}
	return ids, nil
}
