package project

import (
	"time"

	"bugtrail/internal/application/project/usecases"
	"bugtrail/internal/domain/project"
	"bugtrail/internal/domain/user"
)

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Image       string `json:"image" binding:"omitempty,max=500"`
}

func (r *CreateProjectRequest) ToCommand(ownerID uint) usecases.CreateProjectCommand {
	return usecases.CreateProjectCommand{
		OwnerID:     ownerID,
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
	}
}

type UpdateProjectRequest struct {
	Name        string `json:"name" binding:"omitempty,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Image       string `json:"image" binding:"omitempty,max=500"`
}

type SupervisorRequest struct {
	UserID uint `json:"userId" binding:"required"`
}

type ProjectResponse struct {
	ID          uint      `json:"id"`
	OwnerID     uint      `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Supervisors []uint    `json:"supervisors"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID(),
		OwnerID:     p.OwnerID(),
		Name:        p.Name(),
		Description: p.Description(),
		Image:       p.Image(),
		Supervisors: p.Supervisors(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func NewProjectListResponse(projects []*project.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		responses[i] = NewProjectResponse(p)
	}
	return responses
}

type SupervisorResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage,omitempty"`
}

func NewSupervisorListResponse(users []*user.User) []SupervisorResponse {
	responses := make([]SupervisorResponse, len(users))
	for i, u := range users {
		responses[i] = SupervisorResponse{
			ID:           u.ID(),
			Name:         u.Name(),
			Email:        u.Email(),
			ProfileImage: u.ProfileImage(),
		}
	}
	return responses
}
