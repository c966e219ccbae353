package router

import (
	"context"
	"net/http"

	"tgshop/apps/gateway/handlers/admin"
	"tgshop/apps/gateway/handlers/cart"
	"tgshop/apps/gateway/handlers/middleware"
	"tgshop/apps/gateway/handlers/order"
	"tgshop/apps/gateway/handlers/product"
	"tgshop/apps/gateway/handlers/user"
	"tgshop/pkg/config"
	"tgshop/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Options(
	fx.Invoke(
		NewRouter,
	),
)

type Params struct {
	fx.In

	middleware.Middleware
	Lifecycle fx.Lifecycle
	Config    config.IConfig
	Logger    logger.Logger
	User      user.Handler
	Product   product.Handler
	Cart      cart.Handler
	Order     order.Handler
	Admin     admin.Handler
}

func NewRouter(params Params) {
	r := gin.New()
	r.Use(params.Ctx(), gin.Logger(), gin.Recovery())

	userGroup := r.Group("/user")
	{
		userGroup.GET("/state", params.User.GetState)
		userGroup.POST("/state", params.User.UpdateState)
	}

	r.POST("/register", params.User.Register)
	r.POST("/login", params.User.Login)

	r.GET("/products", params.Product.GetListProduct)

	r.POST("/cart/add", params.Cart.AddToCart)
	r.GET("/cart", params.Cart.GetCart)

	r.POST("/order", params.Order.CreateOrder)

	adminGroup := r.Group("/admin")
	{
		adminGroup.POST("/login", params.Admin.LoginAdmin)
		adminGroup.POST("/register", params.Admin.RegisterAdmin)
		adminGroup.POST("/products", params.Product.CreateProduct)
		adminGroup.PUT("/products/:id", params.Product.UpdateProduct)
		adminGroup.DELETE("/products/:id", params.Product.DeleteProduct)
		adminGroup.GET("/orders", params.Order.GetListOrder)
	}

	server := http.Server{
		Addr: params.Config.GetString("server.port"),
		Handler: cors.New(cors.Options{
			AllowedHeaders: []string{"*"},
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		}).Handler(r),
	}

	params.Lifecycle.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Starting application")
				go func() {
					if err := server.ListenAndServe(); err != nil {
						params.Logger.Error(ctx, "Err on ListenAndServe", zap.Error(err))
					}
				}()

				params.Logger.Info(ctx, "Application starting on port", zap.String("port", params.Config.GetString("server.port")))
				return nil
			},
			OnStop: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Application stopped")
				return server.Shutdown(ctx)
			},
		},
	)
}
