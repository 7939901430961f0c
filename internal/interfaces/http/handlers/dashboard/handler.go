package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bugtrail/internal/application/dashboard/usecases"
	"bugtrail/internal/shared/logger"
	"bugtrail/internal/shared/utils"
)

type Handler struct {
	reportsUC *usecases.GetReportsUseCase
	logger    logger.Interface
}

func NewHandler(reportsUC *usecases.GetReportsUseCase) *Handler {
	return &Handler{
		reportsUC: reportsUC,
		logger:    logger.NewLogger(),
	}
}

// StatusReport handles GET /dashboard/:projectId/status-report
func (h *Handler) StatusReport(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "projectId", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	report, err := h.reportsUC.StatusReport(c.Request.Context(), projectID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", StatusReportResponse{
		Open:   report.Open,
		Closed: report.Closed,
	})
}

// PriorityReport handles GET /dashboard/:projectId/priority-report
func (h *Handler) PriorityReport(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "projectId", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	report, err := h.reportsUC.PriorityReport(c.Request.Context(), projectID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", PriorityReportResponse{
		High:   report.High,
		Medium: report.Medium,
		Low:    report.Low,
		Open:   report.Open,
		Closed: report.Closed,
	})
}

// LatestTickets handles GET /dashboard/:projectId/latest-tickets
func (h *Handler) LatestTickets(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "projectId", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	latest, err := h.reportsUC.LatestTickets(c.Request.Context(), projectID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newTicketSummaries(latest))
}

// TopCommentors handles GET /dashboard/:projectId/top-commentors
func (h *Handler) TopCommentors(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "projectId", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	commentors, err := h.reportsUC.TopCommentors(c.Request.Context(), projectID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newCommentorResponses(commentors))
}

// TicketsReport handles GET /dashboard/:projectId/tickets-report
func (h *Handler) TicketsReport(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "projectId", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	days, err := h.reportsUC.TicketsPerDay(c.Request.Context(), projectID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newDayCountResponses(days))
}

// TopSupervisors handles GET /dashboard/:projectId/top-supervisors
func (h *Handler) TopSupervisors(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "projectId", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ranked, err := h.reportsUC.TopSupervisors(c.Request.Context(), projectID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newSupervisorRankResponses(ranked))
}
