package ticket

import "context"

// TicketRepository persists tickets.
//
// Create assigns both the storage ID and the per-project index. The index
// allocation must be atomic with the insert: two concurrent creates under the
// same project must never observe the same index, and indices are never
// reused after deletes.
type TicketRepository interface {
	Create(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	// Delete removes the ticket and all comments attached to it.
	Delete(ctx context.Context, ticketID uint) error
	FindByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// FindByProject returns all tickets of a project, newest first.
	FindByProject(ctx context.Context, projectID uint) ([]*Ticket, error)
}

// CommentRepository persists comments. Comments are immutable; there is no
// update operation. Delete is unconditional and performs no ownership check.
type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, commentID uint) error
	FindByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}
