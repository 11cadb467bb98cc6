package notice

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	noticeapp "eduhub/internal/application/notice"
	"eduhub/internal/shared/authorization"
	"eduhub/internal/shared/constants"
	"eduhub/internal/shared/errors"
	"eduhub/internal/shared/logger"
	"eduhub/internal/shared/utils"
)

// NoticeService is the application-layer surface the handler depends on.
type NoticeService interface {
	Create(ctx context.Context, cmd noticeapp.CreateNoticeCommand) (*noticeapp.NoticeView, error)
	Update(ctx context.Context, cmd noticeapp.UpdateNoticeCommand) (*noticeapp.NoticeView, error)
	Publish(ctx context.Context, noticeID uint) (*noticeapp.NoticeView, error)
	Delete(ctx context.Context, noticeID uint) error
	Get(ctx context.Context, noticeID uint, isAdmin bool) (*noticeapp.NoticeView, error)
	List(ctx context.Context, isAdmin bool, page, pageSize int) ([]*noticeapp.NoticeView, int64, error)
}

type NoticeHandler struct {
	service NoticeService
	logger  logger.Interface
}

func NewNoticeHandler(service NoticeService, log logger.Interface) *NoticeHandler {
	return &NoticeHandler{
		service: service,
		logger:  log,
	}
}

// ListNotices handles GET /notices
func (h *NoticeHandler) ListNotices(c *gin.Context) {
	p := utils.ParsePagination(c)

	notices, total, err := h.service.List(c.Request.Context(), isAdmin(c), p.Page, p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, ToNoticeResponses(notices), total, p.Page, p.PageSize)
}

// GetNotice handles GET /notices/:id
func (h *NoticeHandler) GetNotice(c *gin.Context) {
	noticeID, err := parseNoticeID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.service.Get(c.Request.Context(), noticeID, isAdmin(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ToNoticeResponse(view))
}

// CreateNotice handles POST /notices
func (h *NoticeHandler) CreateNotice(c *gin.Context) {
	var req CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create notice", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	authorID, ok := currentUserID(c)
	if !ok {
		return
	}

	view, err := h.service.Create(c.Request.Context(), req.ToCommand(authorID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, ToNoticeResponse(view), "Notice created successfully")
}

// UpdateNotice handles PUT /notices/:id
func (h *NoticeHandler) UpdateNotice(c *gin.Context) {
	noticeID, err := parseNoticeID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	view, err := h.service.Update(c.Request.Context(), req.ToCommand(noticeID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notice updated successfully", ToNoticeResponse(view))
}

// PublishNotice handles POST /notices/:id/publish
func (h *NoticeHandler) PublishNotice(c *gin.Context) {
	noticeID, err := parseNoticeID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.service.Publish(c.Request.Context(), noticeID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notice published successfully", ToNoticeResponse(view))
}

// DeleteNotice handles DELETE /notices/:id
func (h *NoticeHandler) DeleteNotice(c *gin.Context) {
	noticeID, err := parseNoticeID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), noticeID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseNoticeID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid notice ID")
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
