package repository

import (
	"go.uber.org/fx"

	mongorepo "tgshop/pkg/repository/mongo"
)

var Module = fx.Options(
	mongorepo.Module,
)
