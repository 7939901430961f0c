package models

import (
	"time"

	"bugtrail/internal/shared/constants"
)

type ProjectModel struct {
	ID          uint   `gorm:"primaryKey"`
	OwnerID     uint   `gorm:"not null;index"`
	Name        string `gorm:"not null;size:200"`
	Description string `gorm:"type:text"`
	Image       string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ProjectModel) TableName() string {
	return constants.TableProjects
}

// ProjectSupervisorModel is the membership row linking a supervisor to a
// project. Position records insertion order; dashboard ranking uses it as a
// stable tie-break.
type ProjectSupervisorModel struct {
	ID        uint `gorm:"primaryKey"`
	ProjectID uint `gorm:"not null;uniqueIndex:idx_project_supervisor,priority:1"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_project_supervisor,priority:2"`
	Position  int  `gorm:"not null"`
	CreatedAt time.Time
}

func (ProjectSupervisorModel) TableName() string {
	return constants.TableProjectSupervisors
}
