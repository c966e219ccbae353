package middleware

import (
	"tgshop/pkg/logger"
	"tgshop/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var (
	Module = fx.Provide(NewMiddleware)
)

type (
	Middleware interface {
		Ctx() gin.HandlerFunc
	}

	Params struct {
		fx.In

		Logger logger.Logger
	}

	mw struct {
		logger logger.Logger
	}
)

func NewMiddleware(params Params) Middleware {
	return &mw{
		logger: params.Logger,
	}
}

// Ctx installs the log context on the request, tagging it with the incoming
// X-Request-Id or a generated one.
func (m *mw) Ctx() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = utils.GenKSUID()
		}

		ctx := m.logger.ContextWithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set("X-Request-Id", requestID)
		c.Next()
	}
}
