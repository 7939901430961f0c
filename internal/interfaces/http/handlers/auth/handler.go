package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bugtrail/internal/application/user/usecases"
	"bugtrail/internal/interfaces/http/middleware"
	"bugtrail/internal/shared/logger"
	"bugtrail/internal/shared/utils"
)

type Handler struct {
	registerUC      *usecases.RegisterUseCase
	loginUC         *usecases.LoginUseCase
	resetPasswordUC *usecases.ResetPasswordUseCase
	logger          logger.Interface
}

func NewHandler(
	registerUC *usecases.RegisterUseCase,
	loginUC *usecases.LoginUseCase,
	resetPasswordUC *usecases.ResetPasswordUseCase,
) *Handler {
	return &Handler{
		registerUC:      registerUC,
		loginUC:         loginUC,
		resetPasswordUC: resetPasswordUC,
		logger:          logger.NewLogger(),
	}
}

// Register handles POST /auth/register
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, AuthResponse{
		User:  NewUserResponse(result.User),
		Token: result.Token,
	}, "User registered successfully")
}

// Login handles POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", AuthResponse{
		User:  NewUserResponse(result.User),
		Token: result.Token,
	})
}

// ResetPassword handles POST /auth/reset-password
func (h *Handler) ResetPassword(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for reset password", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	err := h.resetPasswordUC.Execute(c.Request.Context(), usecases.ResetPasswordCommand{
		UserID:          callerID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password updated successfully", nil)
}
