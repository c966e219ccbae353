package admin

import (
	"errors"
	"net/http"

	"tgshop/internal/admin"
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
		LoginAdmin(c *gin.Context)
		RegisterAdmin(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger       logger.Logger
		AdminService admin.Service
	}

	handler struct {
		logger       logger.Logger
		adminService admin.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:       p.Logger,
		adminService: p.AdminService,
	}
}

func (h *handler) LoginAdmin(c *gin.Context) {
	var (
		response structs.Response
		request  structs.AdminAuth
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	err = h.adminService.Login(c, request)
	if err != nil {
		if errors.Is(err, structs.ErrInvalidCredentials) {
			response = structs.Response{Ok: false, Msg: "invalid credentials"}
			return
		}
		h.logger.Error(ctx, " err on h.adminService.Login", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Msg = "admin login successful"
}

func (h *handler) RegisterAdmin(c *gin.Context) {
	var (
		response structs.Response
		request  structs.AdminAuth
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	err = h.adminService.Register(c, request)
	if err != nil {
		if errors.Is(err, structs.ErrUniqueViolation) {
			response = structs.Response{Ok: false, Msg: "admin already exists"}
			return
		}
		h.logger.Error(ctx, " err on h.adminService.Register", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Msg = "admin created"
}
