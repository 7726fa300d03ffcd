package domain

import "context"

type Repository interface {
	// Save persists the family, assigning its id when unset. Failures are
	// reported as ErrStorage, never as driver error types.
	Save(ctx context.Context, family *Family) (*Family, error)
}
