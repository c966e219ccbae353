package main

import (
	"tgshop/apps/gateway"
	"tgshop/cmd/gateway/router"
	"tgshop/internal"
	"tgshop/pkg"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		gateway.Module,
		router.Module,
		pkg.Module,
		internal.Module,
	).Run()
}
