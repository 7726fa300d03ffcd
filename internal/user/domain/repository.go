package domain

import "context"

// Repository is the storage port the use cases depend on. Lookups return
// (nil, nil) when the record is absent; an error always means an
// infrastructure failure, never not-found.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindProfileByUserID(ctx context.Context, userID string) (*UserProfile, error)
	SaveProfile(ctx context.Context, profile *UserProfile) (*UserProfile, error)
}
