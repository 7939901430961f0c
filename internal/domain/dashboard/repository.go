package dashboard

import "context"

// Repository exposes the aggregate queries backing the dashboard endpoints.
// All methods are read-only and scoped to one project.
type Repository interface {
	CountByStatus(ctx context.Context, projectID uint) (*StatusReport, error)
	CountByPriority(ctx context.Context, projectID uint) (*PriorityReport, error)
	LatestTickets(ctx context.Context, projectID uint, limit int) ([]TicketSummary, error)
	TopCommentors(ctx context.Context, projectID uint) ([]CommentorCount, error)
	TicketsPerDay(ctx context.Context, projectID uint, days int) ([]DayCount, error)
	// SupervisorTicketCounts returns one entry per supervisor in insertion
	// order; ranking is left to the caller so ties stay stable.
	SupervisorTicketCounts(ctx context.Context, projectID uint) ([]SupervisorCount, error)
}
