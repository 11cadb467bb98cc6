package usecases

import (
	"context"
	"fmt"

	"eduhub/internal/application/ticket/dto"
	"eduhub/internal/domain/ticket"
	vo "eduhub/internal/domain/ticket/valueobjects"
	apperrors "eduhub/internal/shared/errors"
	"eduhub/internal/shared/logger"
)

type ListTicketsQuery struct {
	UserID   uint
	IsAdmin  bool
	Status   string
	OwnerID  *uint
	Page     int
	PageSize int
}

type ListTicketsResult struct {
	Tickets  []dto.TicketListItemDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.TicketFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	// Students only ever see their own tickets; the owner filter is an
	// admin-only refinement.
	if query.IsAdmin {
		filter.OwnerID = query.OwnerID
	} else {
		ownerID := query.UserID
		filter.OwnerID = &ownerID
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "user_id", query.UserID, "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	items := make([]dto.TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.ToTicketListItemDTO(t))
	}

	return &ListTicketsResult{
		Tickets:  items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
