package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/domain/ticket"
	apperrors "bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type GetTicketResult struct {
	Ticket   *ticket.Ticket
	Comments []*ticket.Comment
}

type GetTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute loads a ticket together with its comments in created-at order.
func (uc *GetTicketUseCase) Execute(ctx context.Context, ticketID uint) (*GetTicketResult, error) {
	existing, err := uc.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "error", err, "ticket_id", ticketID)
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	comments, err := uc.commentRepo.FindByTicketID(ctx, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to load comments", "error", err, "ticket_id", ticketID)
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	return &GetTicketResult{Ticket: existing, Comments: comments}, nil
}
