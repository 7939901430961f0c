package auth

import (
	"bugtrail/internal/application/user/usecases"
	"bugtrail/internal/domain/user"
)

type RegisterRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required,max=20"`
	Password     string `json:"password" binding:"required,min=6"`
	ProjectOwner bool   `json:"projectOwner"`
}

func (r *RegisterRequest) ToCommand() usecases.RegisterCommand {
	return usecases.RegisterCommand{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Password:     r.Password,
		ProjectOwner: r.ProjectOwner,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ResetPasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// UserResponse is the public view of a user. The password digest never
// leaves the server.
type UserResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ProjectOwner bool   `json:"projectOwner"`
	ProfileImage string `json:"profileImage,omitempty"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		Phone:        u.Phone(),
		ProjectOwner: u.IsProjectOwner(),
		ProfileImage: u.ProfileImage(),
	}
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
