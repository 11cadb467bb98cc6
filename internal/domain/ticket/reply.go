package ticket

import (
	"fmt"
	"time"

	vo "eduhub/internal/domain/ticket/valueobjects"
	"eduhub/internal/shared/biztime"
)

// Reply is one message appended to a ticket's thread. Each reply is a pure
// insert; the thread is never read, modified and written back as a whole.
type Reply struct {
	id         uint
	ticketID   uint
	authorID   uint
	authorRole vo.AuthorRole
	body       string
	createdAt  time.Time
}

func NewReply(ticketID, authorID uint, authorRole vo.AuthorRole, body string) (*Reply, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if !authorRole.IsValid() {
		return nil, fmt.Errorf("invalid author role: %s", authorRole)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("body cannot be empty")
	}
	if len(body) > maxBodyLength {
		return nil, fmt.Errorf("body exceeds maximum length of %d characters", maxBodyLength)
	}

	return &Reply{
		ticketID:   ticketID,
		authorID:   authorID,
		authorRole: authorRole,
		body:       body,
		createdAt:  biztime.NowUTC(),
	}, nil
}

// ReconstructReply rebuilds a reply from persisted state.
func ReconstructReply(
	id uint,
	ticketID uint,
	authorID uint,
	authorRole vo.AuthorRole,
	body string,
	createdAt time.Time,
) (*Reply, error) {
	if id == 0 {
		return nil, fmt.Errorf("reply ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !authorRole.IsValid() {
		return nil, fmt.Errorf("invalid author role: %s", authorRole)
	}

	return &Reply{
		id:         id,
		ticketID:   ticketID,
		authorID:   authorID,
		authorRole: authorRole,
		body:       body,
		createdAt:  createdAt,
	}, nil
}

func (r *Reply) ID() uint {
	return r.id
}

func (r *Reply) TicketID() uint {
	return r.ticketID
}

func (r *Reply) AuthorID() uint {
	return r.authorID
}

func (r *Reply) AuthorRole() vo.AuthorRole {
	return r.authorRole
}

func (r *Reply) Body() string {
	return r.body
}

func (r *Reply) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Reply) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("reply ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("reply ID cannot be zero")
	}
	r.id = id
	return nil
}
