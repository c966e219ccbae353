package gateway

import (
	"tgshop/apps/gateway/handlers"

	"go.uber.org/fx"
)

var Module = fx.Options(
	handlers.Module,
)
