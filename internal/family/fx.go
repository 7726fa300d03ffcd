package family

import (
	"github.com/smallbiznis/familia/internal/family/repository"
	"github.com/smallbiznis/familia/internal/family/service"
	"go.uber.org/fx"
)

var Module = fx.Module("family.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
