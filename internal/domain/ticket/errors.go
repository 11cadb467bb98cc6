package ticket

import "errors"

var (
	// ErrTicketClosed is returned when a mutation is attempted on a closed
	// ticket. Closed is terminal in this design.
	ErrTicketClosed = errors.New("ticket is closed")

	// ErrInvalidTransition is returned for status changes outside the
	// lifecycle table.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrTicketNotFound is returned by repositories when no ticket matches.
	ErrTicketNotFound = errors.New("ticket not found")
)
