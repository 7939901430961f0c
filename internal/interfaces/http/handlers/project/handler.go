package project

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bugtrail/internal/application/project/usecases"
	"bugtrail/internal/interfaces/http/middleware"
	"bugtrail/internal/shared/logger"
	"bugtrail/internal/shared/utils"
)

type Handler struct {
	createProjectUC    *usecases.CreateProjectUseCase
	listProjectsUC     *usecases.ListProjectsUseCase
	getProjectUC       *usecases.GetProjectUseCase
	updateProjectUC    *usecases.UpdateProjectUseCase
	deleteProjectUC    *usecases.DeleteProjectUseCase
	addSupervisorUC    *usecases.AddSupervisorUseCase
	removeSupervisorUC *usecases.RemoveSupervisorUseCase
	listSupervisorsUC  *usecases.ListSupervisorsUseCase
	logger             logger.Interface
}

func NewHandler(
	createProjectUC *usecases.CreateProjectUseCase,
	listProjectsUC *usecases.ListProjectsUseCase,
	getProjectUC *usecases.GetProjectUseCase,
	updateProjectUC *usecases.UpdateProjectUseCase,
	deleteProjectUC *usecases.DeleteProjectUseCase,
	addSupervisorUC *usecases.AddSupervisorUseCase,
	removeSupervisorUC *usecases.RemoveSupervisorUseCase,
	listSupervisorsUC *usecases.ListSupervisorsUseCase,
) *Handler {
	return &Handler{
		createProjectUC:    createProjectUC,
		listProjectsUC:     listProjectsUC,
		getProjectUC:       getProjectUC,
		updateProjectUC:    updateProjectUC,
		deleteProjectUC:    deleteProjectUC,
		addSupervisorUC:    addSupervisorUC,
		removeSupervisorUC: removeSupervisorUC,
		listSupervisorsUC:  listSupervisorsUC,
		logger:             logger.NewLogger(),
	}
}

// CreateProject handles POST /projects
func (h *Handler) CreateProject(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create project", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	p, err := h.createProjectUC.Execute(c.Request.Context(), req.ToCommand(callerID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewProjectResponse(p), "Project created successfully")
}

// ListProjects handles GET /projects
func (h *Handler) ListProjects(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	projects, err := h.listProjectsUC.Execute(c.Request.Context(), callerID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewProjectListResponse(projects))
}

// GetProject handles GET /projects/:projectId
func (h *Handler) GetProject(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "projectId", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p, err := h.getProjectUC.Execute(c.Request.Context(), projectID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewProjectResponse(p))
}

// UpdateProject handles PUT /projects/:projectId
func (h *Handler) UpdateProject(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	projectID, err := utils.ParseIDParam(c, "projectId", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update project", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	p, err := h.updateProjectUC.Execute(c.Request.Context(), usecases.UpdateProjectCommand{
		ProjectID:   projectID,
		CallerID:    callerID,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Project updated successfully", NewProjectResponse(p))
}

// DeleteProject handles DELETE /projects/:projectId
func (h *Handler) DeleteProject(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	projectID, err := utils.ParseIDParam(c, "projectId", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteProjectUC.Execute(c.Request.Context(), usecases.DeleteProjectCommand{
		ProjectID: projectID,
		CallerID:  callerID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Project deleted successfully", nil)
}

// AddSupervisor handles POST /projects/:projectId/supervisors
func (h *Handler) AddSupervisor(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	projectID, err := utils.ParseIDParam(c, "projectId", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SupervisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add supervisor", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	if err := h.addSupervisorUC.Execute(c.Request.Context(), usecases.AddSupervisorCommand{
		ProjectID: projectID,
		CallerID:  callerID,
		UserID:    req.UserID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Supervisor added successfully", nil)
}

// RemoveSupervisor handles DELETE /projects/:projectId/supervisors
func (h *Handler) RemoveSupervisor(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	projectID, err := utils.ParseIDParam(c, "projectId", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SupervisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for remove supervisor", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	if err := h.removeSupervisorUC.Execute(c.Request.Context(), usecases.RemoveSupervisorCommand{
		ProjectID: projectID,
		CallerID:  callerID,
		UserID:    req.UserID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Supervisor removed successfully", nil)
}

// ListSupervisors handles GET /projects/:projectId/supervisors
func (h *Handler) ListSupervisors(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "projectId", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	supervisors, err := h.listSupervisorsUC.Execute(c.Request.Context(), projectID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewSupervisorListResponse(supervisors))
}
