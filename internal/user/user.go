package user

import (
	"context"
	"errors"

	"tgshop/internal/structs"
	"tgshop/pkg/logger"
	usersRepo "tgshop/pkg/repository/mongo/users_repo"
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
		UsersRepo usersRepo.Repo
		Logger    logger.Logger
	}

	Service interface {
		GetState(ctx context.Context, telegramID string) (structs.UserState, error)
		UpdateState(ctx context.Context, req structs.UpdateUserState) (structs.User, error)
		Register(ctx context.Context, req structs.Register) (structs.User, error)
		Login(ctx context.Context, req structs.Login) (structs.User, error)
	}

	service struct {
		usersRepo usersRepo.Repo
		logger    logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		usersRepo: p.UsersRepo,
		logger:    p.Logger,
	}
}

// GetState returns the conversation state bundle for a telegramId, lazily
// creating a bare user with state START on first sight.
func (s *service) GetState(ctx context.Context, telegramID string) (structs.UserState, error) {
	user, err := s.usersRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if !errors.Is(err, structs.ErrNotFound) {
			s.logger.Error(ctx, "->usersRepo.GetByTelegramID", zap.Error(err))
			return structs.UserState{}, err
		}
		user, err = s.usersRepo.CreateBare(ctx, telegramID)
		if err != nil {
			s.logger.Error(ctx, "->usersRepo.CreateBare", zap.Error(err))
			return structs.UserState{}, err
		}
	}

	if user.Cart == nil {
		user.Cart = []structs.CartItem{}
	}

	return structs.UserState{
		UserID:       user.ID,
		State:        user.State,
		TempUsername: user.TempUsername,
		TempPassword: user.TempPassword,
		Cart:         user.Cart,
	}, nil
}

func (s *service) UpdateState(ctx context.Context, req structs.UpdateUserState) (structs.User, error) {
	user, err := s.usersRepo.UpdateState(ctx, req)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return structs.User{}, err
		}
		s.logger.Error(ctx, "->usersRepo.UpdateState", zap.Error(err))
		return structs.User{}, err
	}
	return user, nil
}

func (s *service) Register(ctx context.Context, req structs.Register) (structs.User, error) {
	_, err := s.usersRepo.GetByUsername(ctx, req.Username)
	if err == nil {
		return structs.User{}, structs.ErrUniqueViolation
	}
	if !errors.Is(err, structs.ErrNotFound) {
		s.logger.Error(ctx, "->usersRepo.GetByUsername", zap.Error(err))
		return structs.User{}, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.logger.Error(ctx, " err on utils.HashPassword", zap.Error(err))
		return structs.User{}, err
	}

	user, err := s.usersRepo.SetCredentials(ctx, req.TelegramID, req.Username, hash)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return structs.User{}, err
		}
		s.logger.Error(ctx, "->usersRepo.SetCredentials", zap.Error(err))
		return structs.User{}, err
	}

	return user, nil
}

// Login verifies the credentials and rebinds the account to the telegramId
// that logged in, discarding any previous binding.
func (s *service) Login(ctx context.Context, req structs.Login) (structs.User, error) {
	user, err := s.usersRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return structs.User{}, structs.ErrInvalidCredentials
		}
		s.logger.Error(ctx, "->usersRepo.GetByUsername", zap.Error(err))
		return structs.User{}, err
	}

	if !utils.CompareInBcrypt(user.Password, req.Password) {
		return structs.User{}, structs.ErrInvalidCredentials
	}

	user, err = s.usersRepo.BindTelegram(ctx, user.ID, req.TelegramID)
	if err != nil {
		s.logger.Error(ctx, "->usersRepo.BindTelegram", zap.Error(err))
		return structs.User{}, err
	}

	return user, nil
}
