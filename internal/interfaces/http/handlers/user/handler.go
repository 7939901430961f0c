package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bugtrail/internal/application/user/usecases"
	"bugtrail/internal/interfaces/http/middleware"
	"bugtrail/internal/shared/logger"
	"bugtrail/internal/shared/utils"
)

type Handler struct {
	getProfileUC    *usecases.GetProfileUseCase
	updateProfileUC *usecases.UpdateProfileUseCase
	searchUsersUC   *usecases.SearchUsersUseCase
	logger          logger.Interface
}

func NewHandler(
	getProfileUC *usecases.GetProfileUseCase,
	updateProfileUC *usecases.UpdateProfileUseCase,
	searchUsersUC *usecases.SearchUsersUseCase,
) *Handler {
	return &Handler{
		getProfileUC:    getProfileUC,
		updateProfileUC: updateProfileUC,
		searchUsersUC:   searchUsersUC,
		logger:          logger.NewLogger(),
	}
}

// GetProfile handles GET /users/me
func (h *Handler) GetProfile(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	u, err := h.getProfileUC.Execute(c.Request.Context(), callerID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewUserResponse(u))
}

// UpdateProfile handles PUT /users/me
func (h *Handler) UpdateProfile(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update profile", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	u, err := h.updateProfileUC.Execute(c.Request.Context(), req.ToCommand(callerID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", NewUserResponse(u))
}

// SearchUsers handles GET /users?q=prefix
func (h *Handler) SearchUsers(c *gin.Context) {
	users, err := h.searchUsersUC.Execute(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewUserListResponse(users))
}
