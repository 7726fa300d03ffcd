package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/familia/internal/family/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type repo struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
}

func New(conn *gorm.DB, log *zap.Logger, genID *snowflake.Node) domain.Repository {
	return &repo{
		db:    conn,
		log:   log.Named("family.repository"),
		genID: genID,
	}
}

func (r *repo) Save(ctx context.Context, family *domain.Family) (*domain.Family, error) {
	if family.ID == 0 {
		family.ID = r.genID.Generate()
	}
	now := time.Now().UTC()
	if family.CreatedAt.IsZero() {
		family.CreatedAt = now
	}
	family.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(family).Error; err != nil {
		r.log.Error("save family", zap.Error(err))
		return nil, domain.ErrStorage
	}
	return family, nil
}
