package identity

import (
	"github.com/smallbiznis/familia/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("providers.identity",
	fx.Provide(NewFromConfig),
)

func NewFromConfig(cfg config.Config, conn *gorm.DB, log *zap.Logger) Provider {
	if cfg.Identity.Provider == config.IdentityProviderGoTrue {
		return NewGoTrue(Config{
			BaseURL: cfg.Identity.BaseURL,
			APIKey:  cfg.Identity.APIKey,
			Timeout: cfg.Identity.Timeout,
		}, log)
	}

	return NewLocal(conn, log)
}
