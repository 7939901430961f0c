package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/domain/ticket"
	apperrors "bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

// Execute deletes the ticket and its comments. The ticket's index is not
// returned to the project's sequence.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, ticketID uint) error {
	existing, err := uc.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "error", err, "ticket_id", ticketID)
		return fmt.Errorf("failed to load ticket: %w", err)
	}
	if existing == nil {
		return apperrors.NewNotFoundError("ticket not found")
	}

	if err := uc.ticketRepo.Delete(ctx, ticketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", ticketID)
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	uc.logger.Infow("ticket deleted", "ticket_id", ticketID)
	return nil
}
