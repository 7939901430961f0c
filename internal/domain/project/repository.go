package project

import "context"

// Repository persists projects and their supervisor membership.
// FindByID loads the supervisor set in insertion order. Update persists field
// changes and the full supervisor set. Delete removes only the project row
// and its memberships; tickets and comments under it remain.
type Repository interface {
	Save(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, projectID uint) error
	FindByID(ctx context.Context, projectID uint) (*Project, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]*Project, error)
}
