package user

import "context"

// Repository persists user accounts.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u *User) error
	// Upsert creates the account on first sign-in or refreshes name/image on
	// subsequent ones, keyed by email. Returns the stored user.
	Upsert(ctx context.Context, email, name, image string) (*User, error)
}
