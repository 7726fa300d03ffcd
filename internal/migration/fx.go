package migration

import (
	"github.com/smallbiznis/familia/internal/config"
	familydomain "github.com/smallbiznis/familia/internal/family/domain"
	userdomain "github.com/smallbiznis/familia/internal/user/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return RunMigrations(sqlDB)
		}

		return conn.AutoMigrate(
			&userdomain.User{},
			&userdomain.UserProfile{},
			&familydomain.Family{},
		)
	}),
)
