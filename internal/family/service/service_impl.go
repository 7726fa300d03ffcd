package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/smallbiznis/familia/internal/family/domain"
	obsmetrics "github.com/smallbiznis/familia/internal/observability/metrics"
	"github.com/smallbiznis/familia/pkg/response"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const msgFamilyCreated = "Family created successfully!"

type Params struct {
	fx.In

	Log     *zap.Logger
	Repo    domain.Repository
	Metrics *obsmetrics.Metrics `optional:"true"`
}

type service struct {
	log     *zap.Logger
	repo    domain.Repository
	metrics *obsmetrics.Metrics
}

func New(p Params) domain.Service {
	return &service{
		log:     p.Log.Named("family.service"),
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

// Create persists a family for the owning user. Every call creates a new
// record; the storage-assigned id is stripped before the envelope is built.
func (s *service) Create(ctx context.Context, userID string, req domain.CreateFamilyRequest) response.Body {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return response.BuildError(http.StatusBadRequest, domain.CodeInvalidName, "family name is required", nil)
	}

	family, err := s.repo.Save(ctx, &domain.Family{
		Name:   name,
		UserID: userID,
	})
	if err != nil {
		return response.BuildError(http.StatusInternalServerError, domain.CodeStorage, "internal server error", nil)
	}

	s.log.Debug("family created",
		zap.String("user_id", userID),
		zap.String("name", family.Name),
	)
	s.metrics.RecordFamilyCreated(ctx)

	family.ID = 0
	return response.Build(family, http.StatusCreated, msgFamilyCreated)
}
