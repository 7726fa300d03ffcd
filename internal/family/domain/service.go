package domain

import (
	"context"
	"errors"

	"github.com/smallbiznis/familia/pkg/response"
)

type CreateFamilyRequest struct {
	Name string
}

type Service interface {
	Create(ctx context.Context, userID string, req CreateFamilyRequest) response.Body
}

const (
	CodeInvalidName = "invalid_name"
	CodeStorage     = "storage_failure"
)

var ErrStorage = errors.New("storage_failure")
