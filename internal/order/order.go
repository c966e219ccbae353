package order

import (
	"context"
	"errors"

	"tgshop/internal/structs"
	"tgshop/pkg/db"
	"tgshop/pkg/logger"
	ordersRepo "tgshop/pkg/repository/mongo/orders_repo"
	productsRepo "tgshop/pkg/repository/mongo/products_repo"
	usersRepo "tgshop/pkg/repository/mongo/users_repo"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		DB           db.Store
		UsersRepo    usersRepo.Repo
		OrdersRepo   ordersRepo.Repo
		ProductsRepo productsRepo.Repo
		Logger       logger.Logger
	}

	Service interface {
		Create(ctx context.Context, req structs.CreateOrder) error
		GetList(ctx context.Context) ([]structs.OrderView, error)
	}

	service struct {
		db           db.Store
		usersRepo    usersRepo.Repo
		ordersRepo   ordersRepo.Repo
		productsRepo productsRepo.Repo
		logger       logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		db:           p.DB,
		usersRepo:    p.UsersRepo,
		ordersRepo:   p.OrdersRepo,
		productsRepo: p.ProductsRepo,
		logger:       p.Logger,
	}
}

// Create snapshots the user's cart into an immutable order, then clears the
// cart and resets the conversation state to START. Both writes run inside a
// single transaction so a failure cannot leave an order with a stale cart.
func (s *service) Create(ctx context.Context, req structs.CreateOrder) error {
	user, err := s.usersRepo.GetByTelegramID(ctx, req.TelegramID)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return err
		}
		s.logger.Error(ctx, "->usersRepo.GetByTelegramID", zap.Error(err))
		return err
	}

	err = s.db.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.ordersRepo.Create(txCtx, structs.Order{
			UserID:        user.ID,
			TelegramID:    req.TelegramID,
			Products:      user.Cart,
			PaymentMethod: req.PaymentMethod,
		}); err != nil {
			return err
		}

		return s.usersRepo.ResetCart(txCtx, user.ID)
	})
	if err != nil {
		s.logger.Error(ctx, " err on checkout transaction", zap.Error(err))
		return err
	}

	return nil
}

func (s *service) GetList(ctx context.Context) ([]structs.OrderView, error) {
	orders, err := s.ordersRepo.GetList(ctx)
	if err != nil {
		s.logger.Error(ctx, "->ordersRepo.GetList", zap.Error(err))
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0)
	seen := make(map[primitive.ObjectID]struct{})
	for _, o := range orders {
		for _, item := range o.Products {
			if _, ok := seen[item.ProductID]; ok {
				continue
			}
			seen[item.ProductID] = struct{}{}
			ids = append(ids, item.ProductID)
		}
	}

	products, err := s.productsRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error(ctx, "->productsRepo.GetByIDs", zap.Error(err))
		return nil, err
	}

	byID := make(map[primitive.ObjectID]structs.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	views := make([]structs.OrderView, 0, len(orders))
	for _, o := range orders {
		resolved := make([]structs.ResolvedCartItem, 0, len(o.Products))
		for _, item := range o.Products {
			product, ok := byID[item.ProductID]
			if !ok {
				continue
			}
			resolved = append(resolved, structs.ResolvedCartItem{
				Product: product,
				Qty:     item.Qty,
			})
		}
		views = append(views, structs.OrderView{
			ID:            o.ID,
			UserID:        o.UserID,
			TelegramID:    o.TelegramID,
			Products:      resolved,
			PaymentMethod: o.PaymentMethod,
			CreatedAt:     o.CreatedAt,
		})
	}

	return views, nil
}
