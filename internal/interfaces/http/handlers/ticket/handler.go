package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bugtrail/internal/application/ticket/usecases"
	"bugtrail/internal/interfaces/http/middleware"
	"bugtrail/internal/shared/logger"
	"bugtrail/internal/shared/utils"
)

type Handler struct {
	createTicketUC  *usecases.CreateTicketUseCase
	listTicketsUC   *usecases.ListTicketsUseCase
	getTicketUC     *usecases.GetTicketUseCase
	updateTicketUC  *usecases.UpdateTicketUseCase
	deleteTicketUC  *usecases.DeleteTicketUseCase
	pushCommentUC   *usecases.PushCommentUseCase
	deleteCommentUC *usecases.DeleteCommentUseCase
	logger          logger.Interface
}

func NewHandler(
	createTicketUC *usecases.CreateTicketUseCase,
	listTicketsUC *usecases.ListTicketsUseCase,
	getTicketUC *usecases.GetTicketUseCase,
	updateTicketUC *usecases.UpdateTicketUseCase,
	deleteTicketUC *usecases.DeleteTicketUseCase,
	pushCommentUC *usecases.PushCommentUseCase,
	deleteCommentUC *usecases.DeleteCommentUseCase,
) *Handler {
	return &Handler{
		createTicketUC:  createTicketUC,
		listTicketsUC:   listTicketsUC,
		getTicketUC:     getTicketUC,
		updateTicketUC:  updateTicketUC,
		deleteTicketUC:  deleteTicketUC,
		pushCommentUC:   pushCommentUC,
		deleteCommentUC: deleteCommentUC,
		logger:          logger.NewLogger(),
	}
}

// CreateTicket handles POST /projects/:projectId/tickets
func (h *Handler) CreateTicket(c *gin.Context) {
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

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	t, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(projectID, callerID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewTicketResponse(t), "Ticket created successfully")
}

// ListTickets handles GET /projects/:projectId/tickets
func (h *Handler) ListTickets(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "projectId", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	tickets, err := h.listTicketsUC.Execute(c.Request.Context(), projectID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewTicketListResponse(tickets))
}

// GetTicket handles GET /tickets/:ticketId
func (h *Handler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "ticketId", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewTicketWithCommentsResponse(result))
}

// UpdateTicket handles PUT /tickets/:ticketId
func (h *Handler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "ticketId", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	t, err := h.updateTicketUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Closed:      req.Closed,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", NewTicketResponse(t))
}

// DeleteTicket handles DELETE /tickets/:ticketId
func (h *Handler) DeleteTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "ticketId", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), ticketID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", nil)
}

// PushComment handles POST /tickets/:ticketId/comments
func (h *Handler) PushComment(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	ticketID, err := utils.ParseIDParam(c, "ticketId", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PushCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for push comment", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	comment, err := h.pushCommentUC.Execute(c.Request.Context(), usecases.PushCommentCommand{
		TicketID:  ticketID,
		CreatorID: callerID,
		Text:      req.Text,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewCommentResponse(comment), "Comment added successfully")
}

// DeleteComment handles DELETE /comments/:commentId
func (h *Handler) DeleteComment(c *gin.Context) {
	commentID, err := utils.ParseIDParam(c, "commentId", "comment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteCommentUC.Execute(c.Request.Context(), commentID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comment deleted successfully", nil)
}
