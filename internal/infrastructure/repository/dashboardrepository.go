package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"bugtrail/internal/domain/dashboard"
	"bugtrail/internal/infrastructure/persistence/models"
	"bugtrail/internal/shared/constants"
	db "bugtrail/internal/shared/db"
)

// DashboardRepository computes project-scoped reports with aggregate queries.
// Read-only; it never touches domain aggregates.
type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) CountByStatus(ctx context.Context, projectID uint) (*dashboard.StatusReport, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	report := &dashboard.StatusReport{}

	if err := tx.Model(&models.TicketModel{}).
		Where("project_id = ? AND closed = ?", projectID, false).
		Count(&report.Open).Error; err != nil {
		return nil, fmt.Errorf("failed to count open tickets: %w", err)
	}

	if err := tx.Model(&models.TicketModel{}).
		Where("project_id = ? AND closed = ?", projectID, true).
		Count(&report.Closed).Error; err != nil {
		return nil, fmt.Errorf("failed to count closed tickets: %w", err)
	}

	return report, nil
}

func (r *DashboardRepository) CountByPriority(ctx context.Context, projectID uint) (*dashboard.PriorityReport, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		Priority string
		Closed   bool
		Count    int64
	}
	if err := tx.Model(&models.TicketModel{}).
		Select("priority, closed, COUNT(*) AS count").
		Where("project_id = ?", projectID).
		Group("priority, closed").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by priority: %w", err)
	}

	report := &dashboard.PriorityReport{}
	for _, row := range rows {
		switch row.Priority {
		case constants.PriorityHigh:
			report.High += row.Count
		case constants.PriorityMedium:
			report.Medium += row.Count
		case constants.PriorityLow:
			report.Low += row.Count
		}
		if row.Closed {
			report.Closed += row.Count
		} else {
			report.Open += row.Count
		}
	}

	return report, nil
}

func (r *DashboardRepository) LatestTickets(ctx context.Context, projectID uint, limit int) ([]dashboard.TicketSummary, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ticketModels []models.TicketModel
	if err := tx.
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Limit(limit).
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load latest tickets: %w", err)
	}

	summaries := make([]dashboard.TicketSummary, len(ticketModels))
	for i, model := range ticketModels {
		summaries[i] = dashboard.TicketSummary{
			ID:        model.ID,
			Index:     model.TicketIndex,
			Title:     model.Title,
			Priority:  model.Priority,
			Closed:    model.Closed,
			CreatorID: model.CreatorID,
			CreatedAt: model.CreatedAt,
		}
	}

	return summaries, nil
}

func (r *DashboardRepository) TopCommentors(ctx context.Context, projectID uint) ([]dashboard.CommentorCount, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []dashboard.CommentorCount
	if err := tx.
		Table(constants.TableComments).
		Select("comments.creator_id AS user_id, users.name, users.email, users.profile_image, COUNT(*) AS count").
		Joins("JOIN users ON users.id = comments.creator_id").
		Where("comments.project_id = ?", projectID).
		Group("comments.creator_id, users.name, users.email, users.profile_image").
		Order("count DESC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count commentors: %w", err)
	}

	return rows, nil
}

// TicketsPerDay groups creations by calendar day over the trailing window.
// DATE() works identically on MySQL and SQLite, which keeps the tests on the
// in-memory driver honest.
func (r *DashboardRepository) TicketsPerDay(ctx context.Context, projectID uint, days int) ([]dashboard.DayCount, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	since := time.Now().AddDate(0, 0, -days).Truncate(24 * time.Hour)

	var rows []dashboard.DayCount
	if err := tx.
		Table(constants.TableTickets).
		Select("DATE(created_at) AS day, COUNT(*) AS count").
		Where("project_id = ? AND created_at >= ?", projectID, since).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets per day: %w", err)
	}

	return rows, nil
}

// SupervisorTicketCounts joins the membership table so the result carries the
// supervisor insertion order; callers sort by count and rely on that order for
// stable ties.
func (r *DashboardRepository) SupervisorTicketCounts(ctx context.Context, projectID uint) ([]dashboard.SupervisorCount, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []dashboard.SupervisorCount
	if err := tx.
		Table(constants.TableProjectSupervisors).
		Select("project_supervisors.user_id, users.name, users.email, users.profile_image, "+
			"(SELECT COUNT(*) FROM tickets WHERE tickets.project_id = project_supervisors.project_id "+
			"AND tickets.creator_id = project_supervisors.user_id) AS count").
		Joins("JOIN users ON users.id = project_supervisors.user_id").
		Where("project_supervisors.project_id = ?", projectID).
		Order("project_supervisors.position ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count supervisor tickets: %w", err)
	}

	return rows, nil
}
