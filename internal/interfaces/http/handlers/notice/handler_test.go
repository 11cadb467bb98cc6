package notice

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	noticeapp "eduhub/internal/application/notice"
	"eduhub/internal/interfaces/http/handlers/testutil"
	"eduhub/internal/shared/errors"
)

type mockNoticeService struct {
	CreateFunc  func(ctx context.Context, cmd noticeapp.CreateNoticeCommand) (*noticeapp.NoticeView, error)
	UpdateFunc  func(ctx context.Context, cmd noticeapp.UpdateNoticeCommand) (*noticeapp.NoticeView, error)
	PublishFunc func(ctx context.Context, noticeID uint) (*noticeapp.NoticeView, error)
	DeleteFunc  func(ctx context.Context, noticeID uint) error
	GetFunc     func(ctx context.Context, noticeID uint, isAdmin bool) (*noticeapp.NoticeView, error)
	ListFunc    func(ctx context.Context, isAdmin bool, page, pageSize int) ([]*noticeapp.NoticeView, int64, error)
}

func (m *mockNoticeService) Create(ctx context.Context, cmd noticeapp.CreateNoticeCommand) (*noticeapp.NoticeView, error) {
	return m.CreateFunc(ctx, cmd)
}

func (m *mockNoticeService) Update(ctx context.Context, cmd noticeapp.UpdateNoticeCommand) (*noticeapp.NoticeView, error) {
	return m.UpdateFunc(ctx, cmd)
}

func (m *mockNoticeService) Publish(ctx context.Context, noticeID uint) (*noticeapp.NoticeView, error) {
	return m.PublishFunc(ctx, noticeID)
}

func (m *mockNoticeService) Delete(ctx context.Context, noticeID uint) error {
	return m.DeleteFunc(ctx, noticeID)
}

func (m *mockNoticeService) Get(ctx context.Context, noticeID uint, isAdmin bool) (*noticeapp.NoticeView, error) {
	return m.GetFunc(ctx, noticeID, isAdmin)
}

func (m *mockNoticeService) List(ctx context.Context, isAdmin bool, page, pageSize int) ([]*noticeapp.NoticeView, int64, error) {
	return m.ListFunc(ctx, isAdmin, page, pageSize)
}

func sampleView() *noticeapp.NoticeView {
	return &noticeapp.NoticeView{
		ID:       1,
		AuthorID: 2,
		Title:    "Scheduled maintenance",
		Body:     "Service will be unavailable tonight.",
		BodyHTML: "<p>Service will be unavailable tonight.</p>",
		Status:   "published",
	}
}

func TestNoticeHandler_CreateNotice_Success(t *testing.T) {
	var captured noticeapp.CreateNoticeCommand
	svc := &mockNoticeService{
		CreateFunc: func(ctx context.Context, cmd noticeapp.CreateNoticeCommand) (*noticeapp.NoticeView, error) {
			captured = cmd
			return sampleView(), nil
		},
	}
	handler := NewNoticeHandler(svc, testutil.NewMockLogger())

	reqBody := CreateNoticeRequest{Title: "Scheduled maintenance", Body: "Service will be unavailable tonight.", Publish: true}
	c, w := testutil.NewTestContext(http.MethodPost, "/notices", reqBody)
	testutil.SetAuthContext(c, 2, "admin")

	handler.CreateNotice(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(2), captured.AuthorID)
	assert.True(t, captured.Publish)
}

func TestNoticeHandler_CreateNotice_BindError(t *testing.T) {
	handler := NewNoticeHandler(&mockNoticeService{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/notices", map[string]string{"title": "no body"})
	testutil.SetAuthContext(c, 2, "admin")

	handler.CreateNotice(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNoticeHandler_GetNotice_DraftHiddenFromStudents(t *testing.T) {
	svc := &mockNoticeService{
		GetFunc: func(ctx context.Context, noticeID uint, isAdmin bool) (*noticeapp.NoticeView, error) {
			if !isAdmin {
				return nil, errors.NewNotFoundError("notice not found")
			}
			return sampleView(), nil
		},
	}
	handler := NewNoticeHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/notices/1", nil)
	testutil.SetAuthContext(c, 7, "student")
	testutil.SetURLParam(c, "id", "1")

	handler.GetNotice(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNoticeHandler_ListNotices_PassesAdminFlag(t *testing.T) {
	var capturedAdmin bool
	svc := &mockNoticeService{
		ListFunc: func(ctx context.Context, isAdmin bool, page, pageSize int) ([]*noticeapp.NoticeView, int64, error) {
			capturedAdmin = isAdmin
			return []*noticeapp.NoticeView{sampleView()}, 1, nil
		},
	}
	handler := NewNoticeHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/notices", nil)
	testutil.SetAuthContext(c, 2, "admin")

	handler.ListNotices(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, capturedAdmin)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestNoticeHandler_PublishNotice_Success(t *testing.T) {
	svc := &mockNoticeService{
		PublishFunc: func(ctx context.Context, noticeID uint) (*noticeapp.NoticeView, error) {
			return sampleView(), nil
		},
	}
	handler := NewNoticeHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/notices/1/publish", nil)
	testutil.SetAuthContext(c, 2, "admin")
	testutil.SetURLParam(c, "id", "1")

	handler.PublishNotice(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNoticeHandler_DeleteNotice_NotFound(t *testing.T) {
	svc := &mockNoticeService{
		DeleteFunc: func(ctx context.Context, noticeID uint) error {
			return errors.NewNotFoundError("notice not found")
		},
	}
	handler := NewNoticeHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodDelete, "/notices/99", nil)
	testutil.SetAuthContext(c, 2, "admin")
	testutil.SetURLParam(c, "id", "99")

	handler.DeleteNotice(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
