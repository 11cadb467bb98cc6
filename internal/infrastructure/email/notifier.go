package email

import "context"

// TicketNotifier adapts the mail service to the notification port the ticket
// use cases consume.
type TicketNotifier struct {
	svc Service
}

func NewTicketNotifier(svc Service) *TicketNotifier {
	return &TicketNotifier{svc: svc}
}

func (n *TicketNotifier) NotifyTicketAnswered(ctx context.Context, toEmail, toName, ticketSubject string, ticketID uint) error {
	return n.svc.SendTicketAnsweredEmail(ctx, toEmail, toName, ticketSubject, ticketID)
}
