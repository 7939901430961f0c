package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bugtrail/internal/domain/ticket"
	"bugtrail/internal/infrastructure/persistence/mappers"
	"bugtrail/internal/infrastructure/persistence/models"
	db "bugtrail/internal/shared/db"
	apperrors "bugtrail/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

// Create inserts the ticket with a freshly allocated per-project index.
// Allocation and insert run in one transaction: the sequence row is bumped
// with an atomic increment that holds its row lock until commit, so two
// concurrent creates under the same project serialize and can never share
// an index. A plain read-max-then-insert would race.
func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		index, err := r.nextIndex(tx, t.ProjectID())
		if err != nil {
			return err
		}

		if err := t.SetIndex(index); err != nil {
			return err
		}

		model := r.mapper.ToModel(t)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save ticket: %w", err)
		}

		return t.SetID(model.ID)
	})
}

// nextIndex advances the project's sequence and returns the issued index.
// The increment runs as a single UPDATE so the row lock it takes persists
// until the enclosing transaction commits. The sequence only ever grows;
// deleting tickets does not release indices.
func (r *TicketRepository) nextIndex(tx *gorm.DB, projectID uint) (uint, error) {
	result := tx.
		Model(&models.TicketSequenceModel{}).
		Where("project_id = ?", projectID).
		Update("last_index", gorm.Expr("last_index + 1"))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to advance ticket sequence: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		seq := models.TicketSequenceModel{ProjectID: projectID, LastIndex: 1}
		err := tx.Create(&seq).Error
		if err == nil {
			return 1, nil
		}
		if !apperrors.IsDuplicateError(err) {
			return 0, fmt.Errorf("failed to create ticket sequence: %w", err)
		}
		// Lost the race for the first row; increment the winner's row.
		if err := tx.
			Model(&models.TicketSequenceModel{}).
			Where("project_id = ?", projectID).
			Update("last_index", gorm.Expr("last_index + 1")).Error; err != nil {
			return 0, fmt.Errorf("failed to advance ticket sequence: %w", err)
		}
	}

	var seq models.TicketSequenceModel
	if err := tx.Where("project_id = ?", projectID).First(&seq).Error; err != nil {
		return 0, fmt.Errorf("failed to read ticket sequence: %w", err)
	}

	return seq.LastIndex, nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"priority":    model.Priority,
			"closed":      model.Closed,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

// Delete removes the ticket and cascades deletion of its comments.
func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.TicketModel{}, ticketID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete ticket: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("ticket not found")
		}

		if err := tx.
			Where("ticket_id = ?", ticketID).
			Delete(&models.CommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete comments: %w", err)
		}

		return nil
	})
}

func (r *TicketRepository) FindByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) FindByProject(ctx context.Context, projectID uint) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}

	return tickets, nil
}
