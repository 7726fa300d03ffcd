package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	userdomain "github.com/smallbiznis/familia/internal/user/domain"
	"github.com/smallbiznis/familia/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LocalProvider mints identities directly in the local database. It
// stands in for GoTrue in development and tests: like the real provider
// it owns the users table writes, so the rest of the application sees
// the same read model either way. Bearer tokens are the identity id.
type LocalProvider struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewLocal(conn *gorm.DB, log *zap.Logger) *LocalProvider {
	return &LocalProvider{
		db:  conn,
		log: log.Named("identity.local"),
	}
}

func (p *LocalProvider) SignUp(ctx context.Context, email, password string) (*Identity, error) {
	if email == "" || password == "" {
		return nil, ErrSignUpFailed
	}

	// The unique index on email arbitrates concurrent signups; a
	// pre-existence check would only reintroduce the race.
	user := userdomain.NewUser(uuid.NewString(), email)
	if err := p.db.WithContext(ctx).Create(user).Error; err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, ErrSignUpFailed
		}
		p.log.Error("create identity", zap.Error(err))
		return nil, ErrUnavailable
	}

	return &Identity{UserID: user.ID, Email: user.Email}, nil
}

func (p *LocalProvider) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	if _, err := uuid.Parse(token); err != nil {
		return nil, ErrInvalidToken
	}

	var user userdomain.User
	err := p.db.WithContext(ctx).Where("id = ?", token).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		p.log.Error("verify token", zap.Error(err))
		return nil, ErrUnavailable
	}

	return &Identity{UserID: user.ID, Email: user.Email}, nil
}
