package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusPending  TicketStatus = "pending"
	StatusAnswered TicketStatus = "answered"
	StatusClosed   TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusPending:  true,
	StatusAnswered: true,
	StatusClosed:   true,
}

// ticketStatusTransitions defines the allowed lifecycle transitions.
// Closed is terminal; reopening is unsupported.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusPending: {
		StatusAnswered,
		StatusClosed,
	},
	StatusAnswered: {
		StatusClosed,
	},
	StatusClosed: {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowed, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsPending() bool {
	return ts == StatusPending
}

func (ts TicketStatus) IsAnswered() bool {
	return ts == StatusAnswered
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
