package usecases

import (
	"context"

	"eduhub/internal/domain/ticket"
	"eduhub/internal/domain/user"
	"eduhub/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc    func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc  func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc  func(ctx context.Context, ticketID uint) error
	GetByIDFunc func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc    func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, ticket.ErrTicketNotFound
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockReplyRepository struct {
	SaveFunc          func(ctx context.Context, reply *ticket.Reply) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Reply, error)
}

func (m *mockReplyRepository) Save(ctx context.Context, reply *ticket.Reply) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, reply)
	}
	return nil
}

func (m *mockReplyRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Reply, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockUserRepository struct {
	SaveFunc       func(ctx context.Context, u *user.User) error
	GetByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, user.ErrUserNotFound
}

// mockTxManager runs the callback directly; unit tests have no database.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockNotifier struct {
	NotifyFunc func(ctx context.Context, toEmail, toName, ticketSubject string, ticketID uint) error
	calls      int
}

func (m *mockNotifier) NotifyTicketAnswered(ctx context.Context, toEmail, toName, ticketSubject string, ticketID uint) error {
	m.calls++
	if m.NotifyFunc != nil {
		return m.NotifyFunc(ctx, toEmail, toName, ticketSubject, ticketID)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)        {}
func (m *mockLogger) Info(msg string, args ...any)         {}
func (m *mockLogger) Warn(msg string, args ...any)         {}
func (m *mockLogger) Error(msg string, args ...any)        {}
func (m *mockLogger) With(args ...any) logger.Interface    { return m }
func (m *mockLogger) Named(name string) logger.Interface   { return m }
func (m *mockLogger) Debugw(msg string, kv ...interface{}) {}
func (m *mockLogger) Infow(msg string, kv ...interface{})  {}
func (m *mockLogger) Warnw(msg string, kv ...interface{})  {}
func (m *mockLogger) Errorw(msg string, kv ...interface{}) {}
