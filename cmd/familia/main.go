package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/familia/internal/config"
	"github.com/smallbiznis/familia/internal/family"
	"github.com/smallbiznis/familia/internal/migration"
	"github.com/smallbiznis/familia/internal/observability"
	"github.com/smallbiznis/familia/internal/providers/identity"
	"github.com/smallbiznis/familia/internal/server"
	"github.com/smallbiznis/familia/internal/signup"
	"github.com/smallbiznis/familia/internal/user"
	"github.com/smallbiznis/familia/pkg/db"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		config.Module,
		observability.Module,
		fx.Provide(newSnowflakeNode),
		db.Module,
		migration.Module,
		identity.Module,
		user.Module,
		signup.Module,
		family.Module,
		server.Module,
	).Run()
}

func newSnowflakeNode() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
