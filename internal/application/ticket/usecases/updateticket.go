package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/domain/ticket"
	vo "bugtrail/internal/domain/ticket/valueobjects"
	apperrors "bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID    uint
	Title       string
	Description string
	Priority    string
	Closed      bool
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

// Execute merges the patch into the ticket. Zero-valued fields are ignored,
// so Closed=false leaves a closed ticket closed.
func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*ticket.Ticket, error) {
	existing, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	if err := existing.ApplyPatch(cmd.Title, cmd.Description, vo.Priority(cmd.Priority), cmd.Closed); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.logger.Infow("ticket updated", "ticket_id", cmd.TicketID)
	return existing, nil
}
