package domain

import (
	"context"
	"time"

	"github.com/smallbiznis/familia/pkg/response"
)

type Service interface {
	Signup(ctx context.Context, req Request) response.Body
}

type Request struct {
	Email     string
	Password  string
	Name      string
	Surname   string
	BirthDate time.Time
}

// Error codes surfaced in the error envelope.
const (
	CodeDuplicateUser    = "duplicate_user"
	CodeIdentityProvider = "identity_provider_error"
	CodeStorage          = "storage_failure"

	// DetailDuplicateUser is the business code clients match on when a
	// signup is rejected because the account is already complete.
	DetailDuplicateUser = "BILL-201"
)
