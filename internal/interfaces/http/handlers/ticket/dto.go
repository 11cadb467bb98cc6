package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"eduhub/internal/application/ticket/usecases"
	"eduhub/internal/shared/errors"
)

type SubmitTicketRequest struct {
	Subject string `json:"subject" binding:"required,max=200"`
	Body    string `json:"body" binding:"required,max=5000"`
}

func (r *SubmitTicketRequest) ToCommand(ownerID uint) usecases.SubmitTicketCommand {
	return usecases.SubmitTicketCommand{
		OwnerID: ownerID,
		Subject: r.Subject,
		Body:    r.Body,
	}
}

type AddReplyRequest struct {
	Body string `json:"body" binding:"required,max=5000"`
}

type ListTicketsRequest struct {
	Page     int
	PageSize int
	Status   string
	OwnerID  *uint
}

func (r *ListTicketsRequest) ToQuery(userID uint, isAdmin bool) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		UserID:   userID,
		IsAdmin:  isAdmin,
		Status:   r.Status,
		OwnerID:  r.OwnerID,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListTicketsRequest{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
	}

	if ownerIDStr := c.Query("owner_id"); ownerIDStr != "" {
		ownerID, err := strconv.ParseUint(ownerIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("Invalid owner_id")
		}
		id := uint(ownerID)
		req.OwnerID = &id
	}

	return req, nil
}
