// Package email sends transactional mail. The SMTP implementation is the
// production path; the noop implementation backs local development and tests.
package email

import "context"

type Service interface {
	SendTicketAnsweredEmail(ctx context.Context, to, name, ticketSubject string, ticketID uint) error
	SendWelcomeEmail(ctx context.Context, to, name string) error
}

// NoopService drops all mail. Used when email is disabled in config.
type NoopService struct{}

func NewNoopService() *NoopService { return &NoopService{} }

func (s *NoopService) SendTicketAnsweredEmail(ctx context.Context, to, name, ticketSubject string, ticketID uint) error {
	return nil
}

func (s *NoopService) SendWelcomeEmail(ctx context.Context, to, name string) error {
	return nil
}
