package user

import (
	"bugtrail/internal/application/user/usecases"
	"bugtrail/internal/domain/user"
)

type UpdateProfileRequest struct {
	Name         string `json:"name" binding:"omitempty,max=100"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone" binding:"omitempty,max=20"`
	ProfileImage string `json:"profileImage" binding:"omitempty,max=500"`
}

func (r *UpdateProfileRequest) ToCommand(userID uint) usecases.UpdateProfileCommand {
	return usecases.UpdateProfileCommand{
		UserID:       userID,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		ProfileImage: r.ProfileImage,
	}
}

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

func NewUserListResponse(users []*user.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = NewUserResponse(u)
	}
	return responses
}
