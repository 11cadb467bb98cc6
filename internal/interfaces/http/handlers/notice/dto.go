package notice

import (
	noticeapp "eduhub/internal/application/notice"
)

type CreateNoticeRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Body    string `json:"body" binding:"required,max=20000"`
	Publish bool   `json:"publish"`
}

func (r *CreateNoticeRequest) ToCommand(authorID uint) noticeapp.CreateNoticeCommand {
	return noticeapp.CreateNoticeCommand{
		AuthorID: authorID,
		Title:    r.Title,
		Body:     r.Body,
		Publish:  r.Publish,
	}
}

type UpdateNoticeRequest struct {
	Title string `json:"title" binding:"required,max=200"`
	Body  string `json:"body" binding:"required,max=20000"`
}

func (r *UpdateNoticeRequest) ToCommand(noticeID uint) noticeapp.UpdateNoticeCommand {
	return noticeapp.UpdateNoticeCommand{
		NoticeID: noticeID,
		Title:    r.Title,
		Body:     r.Body,
	}
}

type NoticeResponse struct {
	ID          uint   `json:"id"`
	AuthorID    uint   `json:"author_id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	BodyHTML    string `json:"body_html"`
	Status      string `json:"status"`
	PublishedAt *int64 `json:"published_at"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

func ToNoticeResponse(v *noticeapp.NoticeView) *NoticeResponse {
	if v == nil {
		return nil
	}
	return &NoticeResponse{
		ID:          v.ID,
		AuthorID:    v.AuthorID,
		Title:       v.Title,
		Body:        v.Body,
		BodyHTML:    v.BodyHTML,
		Status:      v.Status,
		PublishedAt: v.PublishedAt,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func ToNoticeResponses(views []*noticeapp.NoticeView) []*NoticeResponse {
	out := make([]*NoticeResponse, 0, len(views))
	for _, v := range views {
		out = append(out, ToNoticeResponse(v))
	}
	return out
}
