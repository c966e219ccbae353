package cart

import (
	"errors"
	"net/http"

	"tgshop/internal/cart"
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
		AddToCart(c *gin.Context)
		GetCart(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger      logger.Logger
		CartService cart.Service
	}

	handler struct {
		logger      logger.Logger
		cartService cart.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:      p.Logger,
		cartService: p.CartService,
	}
}

func (h *handler) AddToCart(c *gin.Context) {
	var (
		response structs.Response
		request  structs.AddToCart
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	items, err := h.cartService.Add(c, request)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			response = structs.Response{Ok: false, Msg: "user not found"}
			return
		}
		if errors.Is(err, structs.ErrBadRequest) {
			response = responses.BadRequest
			return
		}
		h.logger.Error(ctx, " err on h.cartService.Add", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Msg = "product added"
	response.Payload = items
}

func (h *handler) GetCart(c *gin.Context) {
	var (
		response   structs.Response
		telegramID = c.Query("telegramId")
		ctx        = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	if telegramID == "" {
		response = responses.BadRequest
		return
	}

	items, err := h.cartService.Get(c, telegramID)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			response = structs.Response{Ok: false, Msg: "user not found"}
			return
		}
		h.logger.Error(ctx, " err on h.cartService.Get", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = items
}
