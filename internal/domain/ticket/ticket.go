package ticket

import (
	"fmt"
	"time"

	vo "eduhub/internal/domain/ticket/valueobjects"
	"eduhub/internal/shared/biztime"
)

const (
	maxSubjectLength = 200
	maxBodyLength    = 5000
)

// Ticket is a single student support request with a lifecycle status.
// The original body is the first visible message of the thread; replies are
// stored separately and appended by either the owner or an admin.
type Ticket struct {
	id        uint
	ownerID   uint
	subject   string
	body      string
	status    vo.TicketStatus
	createdAt time.Time
	updatedAt time.Time
	closedAt  *time.Time
}

func NewTicket(ownerID uint, subject, body string) (*Ticket, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > maxSubjectLength {
		return nil, fmt.Errorf("subject exceeds maximum length of %d characters", maxSubjectLength)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("body is required")
	}
	if len(body) > maxBodyLength {
		return nil, fmt.Errorf("body exceeds maximum length of %d characters", maxBodyLength)
	}

	now := biztime.NowUTC()
	return &Ticket{
		ownerID:   ownerID,
		subject:   subject,
		body:      body,
		status:    vo.StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persisted state.
func ReconstructTicket(
	id uint,
	ownerID uint,
	subject string,
	body string,
	status vo.TicketStatus,
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:        id,
		ownerID:   ownerID,
		subject:   subject,
		body:      body,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
		closedAt:  closedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) OwnerID() uint {
	return t.ownerID
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Body() string {
	return t.body
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// CanBeViewedBy reports whether the user may read or act on this ticket.
// Only the owner and admins qualify.
func (t *Ticket) CanBeViewedBy(userID uint, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	return t.ownerID == userID
}

// AcceptReply validates that the ticket can receive a reply. Closed tickets
// reject all replies.
func (t *Ticket) AcceptReply() error {
	if t.status.IsClosed() {
		return ErrTicketClosed
	}
	t.updatedAt = biztime.NowUTC()
	return nil
}

// Answer moves a pending ticket to answered. Called when an admin replies.
func (t *Ticket) Answer() error {
	if t.status.IsAnswered() {
		return nil
	}
	if !t.status.CanTransitionTo(vo.StatusAnswered) {
		return fmt.Errorf("%w: cannot transition from %s to %s", ErrInvalidTransition, t.status, vo.StatusAnswered)
	}

	t.status = vo.StatusAnswered
	t.updatedAt = biztime.NowUTC()
	return nil
}

// Close moves the ticket to its terminal closed state. Closing an already
// closed ticket is an error; tickets can never be reopened.
func (t *Ticket) Close() error {
	if t.status.IsClosed() {
		return ErrTicketClosed
	}
	if !t.status.CanTransitionTo(vo.StatusClosed) {
		return fmt.Errorf("%w: cannot transition from %s to %s", ErrInvalidTransition, t.status, vo.StatusClosed)
	}

	now := biztime.NowUTC()
	t.status = vo.StatusClosed
	t.closedAt = &now
	t.updatedAt = now
	return nil
}
