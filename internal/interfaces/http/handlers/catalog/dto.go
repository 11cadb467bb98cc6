package catalog

import (
	"time"

	catalogapp "eduhub/internal/application/catalog"
	"eduhub/internal/domain/catalog"
)

type CreateClassRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=1000"`
	SortOrder   int    `json:"sort_order"`
}

func (r *CreateClassRequest) ToCommand() catalogapp.CreateClassCommand {
	return catalogapp.CreateClassCommand{
		Name:        r.Name,
		Description: r.Description,
		SortOrder:   r.SortOrder,
	}
}

type UpdateClassRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=1000"`
	SortOrder   int    `json:"sort_order"`
	Active      bool   `json:"active"`
}

func (r *UpdateClassRequest) ToCommand(classID uint) catalogapp.UpdateClassCommand {
	return catalogapp.UpdateClassCommand{
		ClassID:     classID,
		Name:        r.Name,
		Description: r.Description,
		SortOrder:   r.SortOrder,
		Active:      r.Active,
	}
}

type CreateSubjectRequest struct {
	ClassID   uint   `json:"class_id" binding:"required"`
	Name      string `json:"name" binding:"required,max=100"`
	IconURL   string `json:"icon_url" binding:"max=500"`
	SortOrder int    `json:"sort_order"`
}

func (r *CreateSubjectRequest) ToCommand() catalogapp.CreateSubjectCommand {
	return catalogapp.CreateSubjectCommand{
		ClassID:   r.ClassID,
		Name:      r.Name,
		IconURL:   r.IconURL,
		SortOrder: r.SortOrder,
	}
}

type UpdateSubjectRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	IconURL   string `json:"icon_url" binding:"max=500"`
	SortOrder int    `json:"sort_order"`
	Active    bool   `json:"active"`
}

func (r *UpdateSubjectRequest) ToCommand(subjectID uint) catalogapp.UpdateSubjectCommand {
	return catalogapp.UpdateSubjectCommand{
		SubjectID: subjectID,
		Name:      r.Name,
		IconURL:   r.IconURL,
		SortOrder: r.SortOrder,
		Active:    r.Active,
	}
}

type CreateBookRequest struct {
	SubjectID uint           `json:"subject_id" binding:"required"`
	Title     string         `json:"title" binding:"required,max=200"`
	FileURL   string         `json:"file_url" binding:"required,max=500"`
	CoverURL  string         `json:"cover_url" binding:"max=500"`
	Metadata  map[string]any `json:"metadata"`
	SortOrder int            `json:"sort_order"`
}

func (r *CreateBookRequest) ToCommand() catalogapp.CreateBookCommand {
	return catalogapp.CreateBookCommand{
		SubjectID: r.SubjectID,
		Title:     r.Title,
		FileURL:   r.FileURL,
		CoverURL:  r.CoverURL,
		Metadata:  r.Metadata,
		SortOrder: r.SortOrder,
	}
}

type CreateVideoRequest struct {
	SubjectID    uint   `json:"subject_id" binding:"required"`
	Title        string `json:"title" binding:"required,max=200"`
	VideoURL     string `json:"video_url" binding:"required,max=500"`
	ThumbnailURL string `json:"thumbnail_url" binding:"max=500"`
	DurationSec  int    `json:"duration_sec" binding:"min=0"`
	SortOrder    int    `json:"sort_order"`
}

func (r *CreateVideoRequest) ToCommand() catalogapp.CreateVideoCommand {
	return catalogapp.CreateVideoCommand{
		SubjectID:    r.SubjectID,
		Title:        r.Title,
		VideoURL:     r.VideoURL,
		ThumbnailURL: r.ThumbnailURL,
		DurationSec:  r.DurationSec,
		SortOrder:    r.SortOrder,
	}
}

type ClassResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sort_order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToClassResponse(c *catalog.Class) ClassResponse {
	return ClassResponse{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		SortOrder:   c.SortOrder(),
		Active:      c.IsActive(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func ToClassResponses(classes []*catalog.Class) []ClassResponse {
	out := make([]ClassResponse, 0, len(classes))
	for _, c := range classes {
		out = append(out, ToClassResponse(c))
	}
	return out
}

type SubjectResponse struct {
	ID        uint      `json:"id"`
	ClassID   uint      `json:"class_id"`
	Name      string    `json:"name"`
	IconURL   string    `json:"icon_url"`
	SortOrder int       `json:"sort_order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToSubjectResponse(s *catalog.Subject) SubjectResponse {
	return SubjectResponse{
		ID:        s.ID(),
		ClassID:   s.ClassID(),
		Name:      s.Name(),
		IconURL:   s.IconURL(),
		SortOrder: s.SortOrder(),
		Active:    s.IsActive(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}

func ToSubjectResponses(subjects []*catalog.Subject) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, ToSubjectResponse(s))
	}
	return out
}

type BookResponse struct {
	ID        uint           `json:"id"`
	SubjectID uint           `json:"subject_id"`
	Title     string         `json:"title"`
	FileURL   string         `json:"file_url"`
	CoverURL  string         `json:"cover_url"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	SortOrder int            `json:"sort_order"`
	Active    bool           `json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func ToBookResponse(b *catalog.Book) BookResponse {
	return BookResponse{
		ID:        b.ID(),
		SubjectID: b.SubjectID(),
		Title:     b.Title(),
		FileURL:   b.FileURL(),
		CoverURL:  b.CoverURL(),
		Metadata:  b.Metadata(),
		SortOrder: b.SortOrder(),
		Active:    b.IsActive(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}

func ToBookResponses(books []*catalog.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, ToBookResponse(b))
	}
	return out
}

type VideoResponse struct {
	ID           uint      `json:"id"`
	SubjectID    uint      `json:"subject_id"`
	Title        string    `json:"title"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	DurationSec  int       `json:"duration_sec"`
	SortOrder    int       `json:"sort_order"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToVideoResponse(v *catalog.Video) VideoResponse {
	return VideoResponse{
		ID:           v.ID(),
		SubjectID:    v.SubjectID(),
		Title:        v.Title(),
		VideoURL:     v.VideoURL(),
		ThumbnailURL: v.ThumbnailURL(),
		DurationSec:  v.DurationSec(),
		SortOrder:    v.SortOrder(),
		Active:       v.IsActive(),
		CreatedAt:    v.CreatedAt(),
		UpdatedAt:    v.UpdatedAt(),
	}
}

func ToVideoResponses(videos []*catalog.Video) []VideoResponse {
	out := make([]VideoResponse, 0, len(videos))
	for _, v := range videos {
		out = append(out, ToVideoResponse(v))
	}
	return out
}
