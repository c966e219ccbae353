package handlers

import (
	"tgshop/apps/gateway/handlers/admin"
	"tgshop/apps/gateway/handlers/cart"
	"tgshop/apps/gateway/handlers/middleware"
	"tgshop/apps/gateway/handlers/order"
	"tgshop/apps/gateway/handlers/product"
	"tgshop/apps/gateway/handlers/user"

	"go.uber.org/fx"
)

var Module = fx.Options(
	middleware.Module,
	user.Module,
	product.Module,
	cart.Module,
	order.Module,
	admin.Module,
)
