package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bugtrail/internal/shared/errors"
)

// APIResponse is the envelope every endpoint responds with.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func CreatedResponse(c *gin.Context, data interface{}, message ...string) {
	response := APIResponse{
		Success: true,
		Data:    data,
		Message: "Resource created successfully",
	}
	if len(message) > 0 {
		response.Message = message[0]
	}

	c.JSON(http.StatusCreated, response)
}

// ErrorResponse sends an error response with an explicit status and message.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &ErrorInfo{
			Type:    "error",
			Message: message,
		},
	})
}

// ErrorResponseWithError renders an AppError with its own status code.
// Anything that is not an AppError becomes an opaque 500 so internal error
// text never reaches the client.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
		return
	}

	c.JSON(appErr.Code, APIResponse{
		Success: false,
		Error: &ErrorInfo{
			Type:    string(appErr.Type),
			Message: appErr.Message,
			Details: appErr.Details,
		},
	})
}
