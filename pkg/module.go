package pkg

import (
	"go.uber.org/fx"

	"tgshop/pkg/config"
	"tgshop/pkg/db"
	"tgshop/pkg/logger"
	"tgshop/pkg/redis"
	"tgshop/pkg/reply"
	"tgshop/pkg/repository"
)

var Module = fx.Options(
	config.Module,
	logger.Module,
	repository.Module,
	db.Module,
	reply.Module,
	redis.Module,
)
