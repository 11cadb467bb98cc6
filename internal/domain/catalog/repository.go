package catalog

import (
	"context"
	"errors"
)

var (
	ErrClassNotFound   = errors.New("class not found")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrBookNotFound    = errors.New("book not found")
	ErrVideoNotFound   = errors.New("video not found")
)

type ClassRepository interface {
	Save(ctx context.Context, class *Class) error
	Update(ctx context.Context, class *Class) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Class, error)
	List(ctx context.Context, activeOnly bool) ([]*Class, error)
}

type SubjectRepository interface {
	Save(ctx context.Context, subject *Subject) error
	Update(ctx context.Context, subject *Subject) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Subject, error)
	ListByClassID(ctx context.Context, classID uint, activeOnly bool) ([]*Subject, error)
}

type BookRepository interface {
	Save(ctx context.Context, book *Book) error
	Update(ctx context.Context, book *Book) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Book, error)
	ListBySubjectID(ctx context.Context, subjectID uint, activeOnly bool) ([]*Book, error)
}

type VideoRepository interface {
	Save(ctx context.Context, video *Video) error
	Update(ctx context.Context, video *Video) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Video, error)
	ListBySubjectID(ctx context.Context, subjectID uint, activeOnly bool) ([]*Video, error)
}
