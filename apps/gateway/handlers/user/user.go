package user

import (
	"errors"
	"net/http"

	"tgshop/internal/responses"
	"tgshop/internal/structs"
	"tgshop/internal/user"
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
		GetState(c *gin.Context)
		UpdateState(c *gin.Context)
		Register(c *gin.Context)
		Login(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger      logger.Logger
		UserService user.Service
	}

	handler struct {
		logger      logger.Logger
		userService user.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:      p.Logger,
		userService: p.UserService,
	}
}

func (h *handler) GetState(c *gin.Context) {
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

	state, err := h.userService.GetState(c, telegramID)
	if err != nil {
		h.logger.Error(ctx, " err on h.userService.GetState", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = state
}

func (h *handler) UpdateState(c *gin.Context) {
	var (
		response structs.Response
		request  structs.UpdateUserState
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	updated, err := h.userService.UpdateState(c, request)
	if err != nil {
		// No matching user: the update silently matches nothing and the
		// caller gets ok with null data, as the orchestrator expects.
		if errors.Is(err, structs.ErrNotFound) {
			response = responses.Success
			response.Msg = "state updated"
			return
		}
		h.logger.Error(ctx, " err on h.userService.UpdateState", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Msg = "state updated"
	response.Payload = updated
}

func (h *handler) Register(c *gin.Context) {
	var (
		response structs.Response
		request  structs.Register
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	registered, err := h.userService.Register(c, request)
	if err != nil {
		if errors.Is(err, structs.ErrUniqueViolation) {
			response = structs.Response{Ok: false, Msg: "username already exists"}
			return
		}
		if errors.Is(err, structs.ErrNotFound) {
			response = responses.Success
			response.Msg = "user registered"
			return
		}
		h.logger.Error(ctx, " err on h.userService.Register", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Msg = "user registered"
	response.Payload = registered
}

func (h *handler) Login(c *gin.Context) {
	var (
		response structs.Response
		request  structs.Login
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	logged, err := h.userService.Login(c, request)
	if err != nil {
		if errors.Is(err, structs.ErrInvalidCredentials) {
			response = structs.Response{Ok: false, Msg: "invalid credentials"}
			return
		}
		h.logger.Error(ctx, " err on h.userService.Login", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Msg = "login successful"
	response.Payload = logged
}
