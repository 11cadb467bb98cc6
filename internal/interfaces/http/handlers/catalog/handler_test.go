package catalog

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogapp "eduhub/internal/application/catalog"
	"eduhub/internal/domain/catalog"
	"eduhub/internal/interfaces/http/handlers/testutil"
	"eduhub/internal/shared/errors"
)

type mockCatalogService struct {
	CreateClassFunc   func(ctx context.Context, cmd catalogapp.CreateClassCommand) (*catalog.Class, error)
	UpdateClassFunc   func(ctx context.Context, cmd catalogapp.UpdateClassCommand) (*catalog.Class, error)
	DeleteClassFunc   func(ctx context.Context, classID uint) error
	ListClassesFunc   func(ctx context.Context, includeInactive bool) ([]*catalog.Class, error)
	CreateSubjectFunc func(ctx context.Context, cmd catalogapp.CreateSubjectCommand) (*catalog.Subject, error)
	UpdateSubjectFunc func(ctx context.Context, cmd catalogapp.UpdateSubjectCommand) (*catalog.Subject, error)
	DeleteSubjectFunc func(ctx context.Context, subjectID uint) error
	ListSubjectsFunc  func(ctx context.Context, classID uint, includeInactive bool) ([]*catalog.Subject, error)
	CreateBookFunc    func(ctx context.Context, cmd catalogapp.CreateBookCommand) (*catalog.Book, error)
	DeleteBookFunc    func(ctx context.Context, bookID uint) error
	ListBooksFunc     func(ctx context.Context, subjectID uint, includeInactive bool) ([]*catalog.Book, error)
	CreateVideoFunc   func(ctx context.Context, cmd catalogapp.CreateVideoCommand) (*catalog.Video, error)
	DeleteVideoFunc   func(ctx context.Context, videoID uint) error
	ListVideosFunc    func(ctx context.Context, subjectID uint, includeInactive bool) ([]*catalog.Video, error)
}

func (m *mockCatalogService) CreateClass(ctx context.Context, cmd catalogapp.CreateClassCommand) (*catalog.Class, error) {
	return m.CreateClassFunc(ctx, cmd)
}

func (m *mockCatalogService) UpdateClass(ctx context.Context, cmd catalogapp.UpdateClassCommand) (*catalog.Class, error) {
	return m.UpdateClassFunc(ctx, cmd)
}

func (m *mockCatalogService) DeleteClass(ctx context.Context, classID uint) error {
	return m.DeleteClassFunc(ctx, classID)
}

func (m *mockCatalogService) ListClasses(ctx context.Context, includeInactive bool) ([]*catalog.Class, error) {
	return m.ListClassesFunc(ctx, includeInactive)
}

func (m *mockCatalogService) CreateSubject(ctx context.Context, cmd catalogapp.CreateSubjectCommand) (*catalog.Subject, error) {
	return m.CreateSubjectFunc(ctx, cmd)
}

func (m *mockCatalogService) UpdateSubject(ctx context.Context, cmd catalogapp.UpdateSubjectCommand) (*catalog.Subject, error) {
	return m.UpdateSubjectFunc(ctx, cmd)
}

func (m *mockCatalogService) DeleteSubject(ctx context.Context, subjectID uint) error {
	return m.DeleteSubjectFunc(ctx, subjectID)
}

func (m *mockCatalogService) ListSubjects(ctx context.Context, classID uint, includeInactive bool) ([]*catalog.Subject, error) {
	return m.ListSubjectsFunc(ctx, classID, includeInactive)
}

func (m *mockCatalogService) CreateBook(ctx context.Context, cmd catalogapp.CreateBookCommand) (*catalog.Book, error) {
	return m.CreateBookFunc(ctx, cmd)
}

func (m *mockCatalogService) DeleteBook(ctx context.Context, bookID uint) error {
	return m.DeleteBookFunc(ctx, bookID)
}

func (m *mockCatalogService) ListBooks(ctx context.Context, subjectID uint, includeInactive bool) ([]*catalog.Book, error) {
	return m.ListBooksFunc(ctx, subjectID, includeInactive)
}

func (m *mockCatalogService) CreateVideo(ctx context.Context, cmd catalogapp.CreateVideoCommand) (*catalog.Video, error) {
	return m.CreateVideoFunc(ctx, cmd)
}

func (m *mockCatalogService) DeleteVideo(ctx context.Context, videoID uint) error {
	return m.DeleteVideoFunc(ctx, videoID)
}

func (m *mockCatalogService) ListVideos(ctx context.Context, subjectID uint, includeInactive bool) ([]*catalog.Video, error) {
	return m.ListVideosFunc(ctx, subjectID, includeInactive)
}

func newHandler(svc CatalogService) *CatalogHandler {
	return NewCatalogHandler(svc, testutil.NewMockLogger())
}

func TestCatalogHandler_ListClasses_Success(t *testing.T) {
	class, err := catalog.NewClass("Grade 10", "Tenth grade", 1)
	require.NoError(t, err)
	require.NoError(t, class.SetID(1))

	svc := &mockCatalogService{
		ListClassesFunc: func(ctx context.Context, includeInactive bool) ([]*catalog.Class, error) {
			return []*catalog.Class{class}, nil
		},
	}
	handler := newHandler(svc)

	c, w := testutil.NewTestContext(http.MethodGet, "/catalog/classes", nil)
	testutil.SetAuthContext(c, 7, "student")

	handler.ListClasses(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestCatalogHandler_ListClasses_InactiveScopedToAdmins(t *testing.T) {
	var captured bool
	svc := &mockCatalogService{
		ListClassesFunc: func(ctx context.Context, includeInactive bool) ([]*catalog.Class, error) {
			captured = includeInactive
			return nil, nil
		},
	}
	handler := newHandler(svc)

	// Student asking for inactive entries is ignored
	c, _ := testutil.NewTestContext(http.MethodGet, "/catalog/classes", nil)
	testutil.SetAuthContext(c, 7, "student")
	testutil.SetQueryParams(c, map[string]string{"include_inactive": "true"})
	handler.ListClasses(c)
	assert.False(t, captured)

	// Admin gets them
	c, _ = testutil.NewTestContext(http.MethodGet, "/catalog/classes", nil)
	testutil.SetAuthContext(c, 2, "admin")
	testutil.SetQueryParams(c, map[string]string{"include_inactive": "true"})
	handler.ListClasses(c)
	assert.True(t, captured)
}

func TestCatalogHandler_CreateClass_Success(t *testing.T) {
	svc := &mockCatalogService{
		CreateClassFunc: func(ctx context.Context, cmd catalogapp.CreateClassCommand) (*catalog.Class, error) {
			class, err := catalog.NewClass(cmd.Name, cmd.Description, cmd.SortOrder)
			if err != nil {
				return nil, err
			}
			if err := class.SetID(1); err != nil {
				return nil, err
			}
			return class, nil
		},
	}
	handler := newHandler(svc)

	reqBody := CreateClassRequest{Name: "Grade 10", Description: "Tenth grade", SortOrder: 1}
	c, w := testutil.NewTestContext(http.MethodPost, "/catalog/classes", reqBody)
	testutil.SetAuthContext(c, 2, "admin")

	handler.CreateClass(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCatalogHandler_CreateClass_BindError(t *testing.T) {
	handler := newHandler(&mockCatalogService{})

	c, w := testutil.NewTestContext(http.MethodPost, "/catalog/classes", map[string]string{})
	testutil.SetAuthContext(c, 2, "admin")

	handler.CreateClass(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandler_DeleteClass_NotFound(t *testing.T) {
	svc := &mockCatalogService{
		DeleteClassFunc: func(ctx context.Context, classID uint) error {
			return errors.NewNotFoundError("class not found")
		},
	}
	handler := newHandler(svc)

	c, w := testutil.NewTestContext(http.MethodDelete, "/catalog/classes/99", nil)
	testutil.SetAuthContext(c, 2, "admin")
	testutil.SetURLParam(c, "id", "99")

	handler.DeleteClass(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogHandler_CreateSubject_MissingParent(t *testing.T) {
	svc := &mockCatalogService{
		CreateSubjectFunc: func(ctx context.Context, cmd catalogapp.CreateSubjectCommand) (*catalog.Subject, error) {
			return nil, errors.NewNotFoundError("class not found")
		},
	}
	handler := newHandler(svc)

	reqBody := CreateSubjectRequest{ClassID: 99, Name: "Math"}
	c, w := testutil.NewTestContext(http.MethodPost, "/catalog/subjects", reqBody)
	testutil.SetAuthContext(c, 2, "admin")

	handler.CreateSubject(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogHandler_ListBooks_InvalidSubjectID(t *testing.T) {
	handler := newHandler(&mockCatalogService{})

	c, w := testutil.NewTestContext(http.MethodGet, "/catalog/subjects/abc/books", nil)
	testutil.SetAuthContext(c, 7, "student")
	testutil.SetURLParam(c, "id", "abc")

	handler.ListBooks(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandler_CreateVideo_Success(t *testing.T) {
	svc := &mockCatalogService{
		CreateVideoFunc: func(ctx context.Context, cmd catalogapp.CreateVideoCommand) (*catalog.Video, error) {
			video, err := catalog.NewVideo(cmd.SubjectID, cmd.Title, cmd.VideoURL, cmd.ThumbnailURL, cmd.DurationSec, cmd.SortOrder)
			if err != nil {
				return nil, err
			}
			if err := video.SetID(5); err != nil {
				return nil, err
			}
			return video, nil
		},
	}
	handler := newHandler(svc)

	reqBody := CreateVideoRequest{
		SubjectID:   3,
		Title:       "Quadratic equations",
		VideoURL:    "https://cdn.example.com/v/42.mp4",
		DurationSec: 600,
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/catalog/videos", reqBody)
	testutil.SetAuthContext(c, 2, "admin")

	handler.CreateVideo(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}
