package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/oklog/ulid/v2"
	"github.com/smallbiznis/familia/internal/user/domain"
	"github.com/smallbiznis/familia/pkg/db"
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
		log:   log.Named("user.repository"),
		genID: genID,
	}
}

func (r *repo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if db.IsNotFoundErr(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("find user by email", zap.Error(err))
		return nil, domain.ErrStorage
	}
	return &user, nil
}

func (r *repo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if db.IsNotFoundErr(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("find user by id", zap.Error(err))
		return nil, domain.ErrStorage
	}
	return &user, nil
}

func (r *repo) FindProfileByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if db.IsNotFoundErr(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("find profile by user id", zap.Error(err))
		return nil, domain.ErrStorage
	}
	return &profile, nil
}

func (r *repo) SaveProfile(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error) {
	if profile.ID == 0 {
		profile.ID = r.genID.Generate()
	}
	if profile.Serial == "" {
		profile.Serial = ulid.Make().String()
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		r.log.Error("save profile", zap.Error(err))
		return nil, domain.ErrStorage
	}
	return profile, nil
}
