package mongo

import (
	adminsRepo "tgshop/pkg/repository/mongo/admins_repo"
	ordersRepo "tgshop/pkg/repository/mongo/orders_repo"
	productsRepo "tgshop/pkg/repository/mongo/products_repo"
	usersRepo "tgshop/pkg/repository/mongo/users_repo"

	"go.uber.org/fx"
)

var Module = fx.Options(
	usersRepo.Module,
	productsRepo.Module,
	ordersRepo.Module,
	adminsRepo.Module,
)
