package catalog

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogapp "eduhub/internal/application/catalog"
	"eduhub/internal/domain/catalog"
	"eduhub/internal/shared/authorization"
	"eduhub/internal/shared/constants"
	"eduhub/internal/shared/errors"
	"eduhub/internal/shared/logger"
	"eduhub/internal/shared/utils"
)

// CatalogService is the application-layer surface the handler depends on.
type CatalogService interface {
	CreateClass(ctx context.Context, cmd catalogapp.CreateClassCommand) (*catalog.Class, error)
	UpdateClass(ctx context.Context, cmd catalogapp.UpdateClassCommand) (*catalog.Class, error)
	DeleteClass(ctx context.Context, classID uint) error
	ListClasses(ctx context.Context, includeInactive bool) ([]*catalog.Class, error)

	CreateSubject(ctx context.Context, cmd catalogapp.CreateSubjectCommand) (*catalog.Subject, error)
	UpdateSubject(ctx context.Context, cmd catalogapp.UpdateSubjectCommand) (*catalog.Subject, error)
	DeleteSubject(ctx context.Context, subjectID uint) error
	ListSubjects(ctx context.Context, classID uint, includeInactive bool) ([]*catalog.Subject, error)

	CreateBook(ctx context.Context, cmd catalogapp.CreateBookCommand) (*catalog.Book, error)
	DeleteBook(ctx context.Context, bookID uint) error
	ListBooks(ctx context.Context, subjectID uint, includeInactive bool) ([]*catalog.Book, error)

	CreateVideo(ctx context.Context, cmd catalogapp.CreateVideoCommand) (*catalog.Video, error)
	DeleteVideo(ctx context.Context, videoID uint) error
	ListVideos(ctx context.Context, subjectID uint, includeInactive bool) ([]*catalog.Video, error)
}

type CatalogHandler struct {
	service CatalogService
	logger  logger.Interface
}

func NewCatalogHandler(service CatalogService, log logger.Interface) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  log,
	}
}

// ListClasses handles GET /catalog/classes
func (h *CatalogHandler) ListClasses(c *gin.Context) {
	classes, err := h.service.ListClasses(c.Request.Context(), includeInactive(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ToClassResponses(classes))
}

// CreateClass handles POST /catalog/classes
func (h *CatalogHandler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create class", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	class, err := h.service.CreateClass(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, ToClassResponse(class), "Class created successfully")
}

// UpdateClass handles PUT /catalog/classes/:id
func (h *CatalogHandler) UpdateClass(c *gin.Context) {
	classID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	class, err := h.service.UpdateClass(c.Request.Context(), req.ToCommand(classID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Class updated successfully", ToClassResponse(class))
}

// DeleteClass handles DELETE /catalog/classes/:id
func (h *CatalogHandler) DeleteClass(c *gin.Context) {
	classID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.DeleteClass(c.Request.Context(), classID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListSubjects handles GET /catalog/classes/:id/subjects
func (h *CatalogHandler) ListSubjects(c *gin.Context) {
	classID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	subjects, err := h.service.ListSubjects(c.Request.Context(), classID, includeInactive(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ToSubjectResponses(subjects))
}

// CreateSubject handles POST /catalog/subjects
func (h *CatalogHandler) CreateSubject(c *gin.Context) {
	var req CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create subject", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	subject, err := h.service.CreateSubject(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, ToSubjectResponse(subject), "Subject created successfully")
}

// UpdateSubject handles PUT /catalog/subjects/:id
func (h *CatalogHandler) UpdateSubject(c *gin.Context) {
	subjectID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	subject, err := h.service.UpdateSubject(c.Request.Context(), req.ToCommand(subjectID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subject updated successfully", ToSubjectResponse(subject))
}

// DeleteSubject handles DELETE /catalog/subjects/:id
func (h *CatalogHandler) DeleteSubject(c *gin.Context) {
	subjectID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.DeleteSubject(c.Request.Context(), subjectID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListBooks handles GET /catalog/subjects/:id/books
func (h *CatalogHandler) ListBooks(c *gin.Context) {
	subjectID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	books, err := h.service.ListBooks(c.Request.Context(), subjectID, includeInactive(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ToBookResponses(books))
}

// CreateBook handles POST /catalog/books
func (h *CatalogHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create book", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	book, err := h.service.CreateBook(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, ToBookResponse(book), "Book created successfully")
}

// DeleteBook handles DELETE /catalog/books/:id
func (h *CatalogHandler) DeleteBook(c *gin.Context) {
	bookID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.DeleteBook(c.Request.Context(), bookID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListVideos handles GET /catalog/subjects/:id/videos
func (h *CatalogHandler) ListVideos(c *gin.Context) {
	subjectID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	videos, err := h.service.ListVideos(c.Request.Context(), subjectID, includeInactive(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ToVideoResponses(videos))
}

// CreateVideo handles POST /catalog/videos
func (h *CatalogHandler) CreateVideo(c *gin.Context) {
	var req CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create video", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	video, err := h.service.CreateVideo(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, ToVideoResponse(video), "Video created successfully")
}

// DeleteVideo handles DELETE /catalog/videos/:id
func (h *CatalogHandler) DeleteVideo(c *gin.Context) {
	videoID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.DeleteVideo(c.Request.Context(), videoID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid " + name)
	}
	return uint(id), nil
}

// Students only ever see active entries. Admins may request inactive ones
// with ?include_inactive=true.
func includeInactive(c *gin.Context) bool {
	if c.Query("include_inactive") != "true" {
		return false
	}
	role := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))
	return role.IsAdmin()
}
