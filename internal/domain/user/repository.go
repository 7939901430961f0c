package user

import "context"

// Repository persists users. Lookups that miss return (nil, nil) so callers
// can distinguish "no such user" from infrastructure failures.
type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	// FindByEmailOrPhone matches either field against the same identifier,
	// mirroring the login contract.
	FindByEmailOrPhone(ctx context.Context, identifier string) (*User, error)
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)
	// SearchByPrefix matches name or email prefixes, for user lookup.
	SearchByPrefix(ctx context.Context, prefix string) ([]*User, error)
}
