package product

import (
	"errors"
	"net/http"

	"tgshop/internal/product"
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
		GetListProduct(c *gin.Context)
		CreateProduct(c *gin.Context)
		UpdateProduct(c *gin.Context)
		DeleteProduct(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger         logger.Logger
		ProductService product.Service
	}

	handler struct {
		logger         logger.Logger
		productService product.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:         p.Logger,
		productService: p.ProductService,
	}
}

func (h *handler) GetListProduct(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	products, err := h.productService.GetList(c)
	if err != nil {
		h.logger.Error(ctx, " err on h.productService.GetList", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = products
}

func (h *handler) CreateProduct(c *gin.Context) {
	var (
		response structs.Response
		request  structs.CreateProduct
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	created, err := h.productService.Create(c, request)
	if err != nil {
		h.logger.Error(ctx, " err on h.productService.Create", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = created
}

func (h *handler) UpdateProduct(c *gin.Context) {
	var (
		response structs.Response
		request  structs.PatchProduct
		id       = c.Param("id")
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	updated, err := h.productService.Update(c, id, request)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			response = responses.NotFound
			return
		}
		if errors.Is(err, structs.ErrBadRequest) {
			response = responses.BadRequest
			return
		}
		h.logger.Error(ctx, " err on h.productService.Update", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = updated
}

func (h *handler) DeleteProduct(c *gin.Context) {
	var (
		response structs.Response
		id       = c.Param("id")
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := h.productService.Delete(c, id)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			response = responses.NotFound
			return
		}
		if errors.Is(err, structs.ErrBadRequest) {
			response = responses.BadRequest
			return
		}
		h.logger.Error(ctx, " err on h.productService.Delete", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Msg = "product deleted"
}
