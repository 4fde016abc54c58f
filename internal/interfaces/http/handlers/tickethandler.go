package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC   usecases.CreateTicketExecutor
	getTicketUC      usecases.GetTicketExecutor
	listMyTicketsUC  usecases.ListMyTicketsExecutor
	listAllTicketsUC usecases.ListAllTicketsExecutor
	changeStatusUC   usecases.ChangeStatusExecutor
	addCommentUC     usecases.AddCommentExecutor
	logger           logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listMyTicketsUC usecases.ListMyTicketsExecutor,
	listAllTicketsUC usecases.ListAllTicketsExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	addCommentUC usecases.AddCommentExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:   createTicketUC,
		getTicketUC:      getTicketUC,
		listMyTicketsUC:  listMyTicketsUC,
		listAllTicketsUC: listAllTicketsUC,
		changeStatusUC:   changeStatusUC,
		addCommentUC:     addCommentUC,
		logger:           logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(p.UserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID:    ticketID,
		RequesterID: p.UserID,
		Role:        p.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListMyTickets handles GET /tickets
func (h *TicketHandler) ListMyTickets(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	result, err := h.listMyTicketsUC.Execute(c.Request.Context(), usecases.ListMyTicketsQuery{
		OwnerID: p.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListAllTickets handles GET /tickets/admin/all
func (h *TicketHandler) ListAllTickets(c *gin.Context) {
	result, err := h.listAllTicketsUC.Execute(c.Request.Context(), usecases.ListAllTicketsQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ChangeStatus handles PUT /tickets/:id/status and
// PUT /tickets/admin/:id/status. The new status arrives as a query
// parameter.
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	status := c.Query("status")
	if status == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("status query parameter is required"))
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID:  ticketID,
		NewStatus: status,
		ActorID:   p.UserID,
		ActorRole: p.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", result)
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID: ticketID,
		AuthorID: p.UserID,
		Content:  req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}
