package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"eduhub/internal/application/ticket/usecases"
	"eduhub/internal/shared/authorization"
	"eduhub/internal/shared/constants"
	"eduhub/internal/shared/errors"
	"eduhub/internal/shared/logger"
	"eduhub/internal/shared/utils"
)

type TicketHandler struct {
	submitTicketUC usecases.SubmitTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	addReplyUC     usecases.AddReplyExecutor
	closeTicketUC  usecases.CloseTicketExecutor
	deleteTicketUC usecases.DeleteTicketExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	submitTicketUC usecases.SubmitTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	addReplyUC usecases.AddReplyExecutor,
	closeTicketUC usecases.CloseTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		submitTicketUC: submitTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		addReplyUC:     addReplyUC,
		closeTicketUC:  closeTicketUC,
		deleteTicketUC: deleteTicketUC,
		logger:         log,
	}
}

// SubmitTicket handles POST /tickets
func (h *TicketHandler) SubmitTicket(c *gin.Context) {
	var req SubmitTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.submitTicketUC.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket submitted successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	query := usecases.GetTicketQuery{
		TicketID: ticketID,
		UserID:   userID,
		IsAdmin:  isAdmin(c),
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery(userID, isAdmin(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, req.Page, req.PageSize)
}

// AddReply handles POST /tickets/:id/replies
func (h *TicketHandler) AddReply(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add reply", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cmd := usecases.AddReplyCommand{
		TicketID: ticketID,
		AuthorID: userID,
		IsAdmin:  isAdmin(c),
		Body:     req.Body,
	}

	result, err := h.addReplyUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Reply added successfully")
}

// CloseTicket handles POST /tickets/:id/close
func (h *TicketHandler) CloseTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cmd := usecases.CloseTicketCommand{
		TicketID: ticketID,
		UserID:   userID,
		IsAdmin:  isAdmin(c),
	}

	result, err := h.closeTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket closed successfully", result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cmd := usecases.DeleteTicketCommand{
		TicketID: ticketID,
		UserID:   userID,
		IsAdmin:  isAdmin(c),
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseTicketID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid ticket ID")
	}
	return uint(id), nil
}

func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return 0, false
	}
	userID, ok := v.(uint)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return 0, false
	}
	return userID, true
}

func isAdmin(c *gin.Context) bool {
	role := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))
	return role.IsAdmin()
}
