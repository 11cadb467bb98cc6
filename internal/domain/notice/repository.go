package notice

import (
	"context"
	"errors"
)

var ErrNoticeNotFound = errors.New("notice not found")

type Repository interface {
	Save(ctx context.Context, notice *Notice) error
	Update(ctx context.Context, notice *Notice) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Notice, error)
	// List returns notices newest-first. When publishedOnly is true drafts
	// are excluded; students never see drafts.
	List(ctx context.Context, publishedOnly bool, page, pageSize int) ([]*Notice, int64, error)
}
