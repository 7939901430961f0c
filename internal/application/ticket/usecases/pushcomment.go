package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/domain/ticket"
	apperrors "bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type PushCommentCommand struct {
	TicketID  uint
	CreatorID uint
	Text      string
}

type PushCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewPushCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *PushCommentUseCase {
	return &PushCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute attaches a comment to the ticket. The comment carries the ticket's
// project id so dashboard queries never need the ticket row.
func (uc *PushCommentUseCase) Execute(ctx context.Context, cmd PushCommentCommand) (*ticket.Comment, error) {
	existing, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	comment, err := ticket.NewComment(cmd.TicketID, existing.ProjectID(), cmd.CreatorID, cmd.Text)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	uc.logger.Infow("comment added", "comment_id", comment.ID(), "ticket_id", cmd.TicketID)
	return comment, nil
}
