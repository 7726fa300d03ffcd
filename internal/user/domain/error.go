package domain

import "errors"

var (
	// ErrStorage is the infrastructure-failure signal repositories return
	// instead of leaking driver error types.
	ErrStorage = errors.New("storage_failure")
)
