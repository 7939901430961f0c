package usecases

import (
	"context"
	"fmt"
	"strings"

	"bugtrail/internal/domain/ticket"
	apperrors "bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type DeleteCommentUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(commentRepo ticket.CommentRepository, logger logger.Interface) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{commentRepo: commentRepo, logger: logger}
}

// Execute deletes the comment without checking who wrote it.
func (uc *DeleteCommentUseCase) Execute(ctx context.Context, commentID uint) error {
	if err := uc.commentRepo.Delete(ctx, commentID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return apperrors.NewNotFoundError("comment not found")
		}
		uc.logger.Errorw("failed to delete comment", "error", err, "comment_id", commentID)
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	uc.logger.Infow("comment deleted", "comment_id", commentID)
	return nil
}
