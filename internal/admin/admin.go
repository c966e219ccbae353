package admin

import (
	"context"
	"errors"

	"tgshop/internal/structs"
	"tgshop/pkg/logger"
	adminsRepo "tgshop/pkg/repository/mongo/admins_repo"
	"tgshop/pkg/utils"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		AdminsRepo adminsRepo.Repo
		Logger     logger.Logger
	}

	// Auth verifies admin credentials. No session or token is issued; the
	// front-end keeps its own session state.
	Auth interface {
		Login(ctx context.Context, req structs.AdminAuth) error
		Register(ctx context.Context, req structs.AdminAuth) error
	}

	Service interface {
		Auth
	}

	service struct {
		adminsRepo adminsRepo.Repo
		logger     logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		adminsRepo: p.AdminsRepo,
		logger:     p.Logger,
	}
}

func (s *service) Login(ctx context.Context, req structs.AdminAuth) error {
	admin, err := s.adminsRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return structs.ErrInvalidCredentials
		}
		s.logger.Error(ctx, "->adminsRepo.GetByUsername", zap.Error(err))
		return err
	}

	if !utils.CompareInBcrypt(admin.Password, req.Password) {
		return structs.ErrInvalidCredentials
	}

	return nil
}

func (s *service) Register(ctx context.Context, req structs.AdminAuth) error {
	_, err := s.adminsRepo.GetByUsername(ctx, req.Username)
	if err == nil {
		return structs.ErrUniqueViolation
	}
	if !errors.Is(err, structs.ErrNotFound) {
		s.logger.Error(ctx, "->adminsRepo.GetByUsername", zap.Error(err))
		return err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.logger.Error(ctx, " err on utils.HashPassword", zap.Error(err))
		return err
	}

	if err := s.adminsRepo.Create(ctx, req.Username, hash); err != nil {
		s.logger.Error(ctx, "->adminsRepo.Create", zap.Error(err))
		return err
	}

	return nil
}
