package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bugtrail/internal/domain/project"
	"bugtrail/internal/shared/logger"
	"bugtrail/internal/shared/utils"
)

// ProjectOwnerMiddleware guards routes that only the project owner may call.
type ProjectOwnerMiddleware struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewProjectOwnerMiddleware(projectRepo project.Repository, logger logger.Interface) *ProjectOwnerMiddleware {
	return &ProjectOwnerMiddleware{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// RequireProjectOwner loads the project from the :projectId route param and
// rejects callers who do not own it. Must run after RequireAuth.
func (m *ProjectOwnerMiddleware) RequireProjectOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := CallerID(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		projectID, err := utils.ParseIDParam(c, "projectId", "project")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		existing, err := m.projectRepo.FindByID(c.Request.Context(), projectID)
		if err != nil {
			m.logger.Errorw("failed to load project", "error", err, "project_id", projectID)
			utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
			c.Abort()
			return
		}
		if existing == nil {
			utils.ErrorResponse(c, http.StatusNotFound, "project not found")
			c.Abort()
			return
		}
		if !existing.IsOwnedBy(callerID) {
			utils.ErrorResponse(c, http.StatusForbidden, "only the project owner can perform this action")
			c.Abort()
			return
		}

		c.Next()
	}
}
