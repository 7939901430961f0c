package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"bugtrail/internal/domain/ticket"
	"bugtrail/internal/infrastructure/persistence/mappers"
	"bugtrail/internal/infrastructure/persistence/models"
	db "bugtrail/internal/shared/db"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CommentRepository) Delete(ctx context.Context, commentID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.CommentModel{}, commentID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("comment not found")
	}

	return nil
}

func (r *CommentRepository) FindByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var commentModels []models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*ticket.Comment, len(commentModels))
	for i, model := range commentModels {
		c, err := r.mapper.CommentToDomain(&model)
		if err != nil {
			return nil, err
		}
		comments[i] = c
	}

	return comments, nil
}
