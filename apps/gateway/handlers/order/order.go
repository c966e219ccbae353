package order

import (
	"errors"
	"net/http"

	"tgshop/internal/order"
	"tgshop/internal/responses"
	"tgshop/internal/structs"
	"tgshop/pkg/logger"
	"tgshop/pkg/reply"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Handler interface {
		CreateOrder(c *gin.Context)
		GetListOrder(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger       logger.Logger
		OrderService order.Service
	}

	handler struct {
		logger       logger.Logger
		orderService order.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:       p.Logger,
		orderService: p.OrderService,
	}
}

func (h *handler) CreateOrder(c *gin.Context) {
	var (
		response structs.Response
		request  structs.CreateOrder
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	err = h.orderService.Create(c, request)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			response = structs.Response{Ok: false, Msg: "user not found"}
			return
		}
		h.logger.Error(ctx, " err on h.orderService.Create", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Msg = "order created"
}

func (h *handler) GetListOrder(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	orders, err := h.orderService.GetList(c)
	if err != nil {
		h.logger.Error(ctx, " err on h.orderService.GetList", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = orders
}
