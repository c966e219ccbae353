package internal

import (
	"tgshop/internal/admin"
	"tgshop/internal/cart"
	"tgshop/internal/order"
	"tgshop/internal/product"
	"tgshop/internal/user"

	"go.uber.org/fx"
)

var Module = fx.Options(
	user.Module,
	product.Module,
	cart.Module,
	order.Module,
	admin.Module,
)
