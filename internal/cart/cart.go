package cart

import (
	"context"
	"errors"

	"tgshop/internal/structs"
	"tgshop/pkg/logger"
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
		UsersRepo    usersRepo.Repo
		ProductsRepo productsRepo.Repo
		Logger       logger.Logger
	}

	Service interface {
		Add(ctx context.Context, req structs.AddToCart) ([]structs.CartItem, error)
		Get(ctx context.Context, telegramID string) ([]structs.ResolvedCartItem, error)
	}

	service struct {
		usersRepo    usersRepo.Repo
		productsRepo productsRepo.Repo
		logger       logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		usersRepo:    p.UsersRepo,
		productsRepo: p.ProductsRepo,
		logger:       p.Logger,
	}
}

// Add appends a {productId, qty:1} line to the user's cart. Repeated adds of
// the same product produce separate lines; there is no merge.
func (s *service) Add(ctx context.Context, req structs.AddToCart) ([]structs.CartItem, error) {
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return nil, structs.ErrBadRequest
	}

	user, err := s.usersRepo.PushCartItem(ctx, req.TelegramID, structs.CartItem{
		ProductID: productID,
		Qty:       1,
	})
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return nil, err
		}
		s.logger.Error(ctx, "->usersRepo.PushCartItem", zap.Error(err))
		return nil, err
	}

	return user.Cart, nil
}

func (s *service) Get(ctx context.Context, telegramID string) ([]structs.ResolvedCartItem, error) {
	user, err := s.usersRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return nil, err
		}
		s.logger.Error(ctx, "->usersRepo.GetByTelegramID", zap.Error(err))
		return nil, err
	}

	resolved, err := s.resolve(ctx, user.Cart)
	if err != nil {
		s.logger.Error(ctx, " err on cart resolve", zap.Error(err))
		return nil, err
	}

	return resolved, nil
}

// resolve joins cart lines to their product documents. Lines whose product no
// longer exists are dropped.
func (s *service) resolve(ctx context.Context, items []structs.CartItem) ([]structs.ResolvedCartItem, error) {
	ids := make([]primitive.ObjectID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.productsRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]structs.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	resolved := make([]structs.ResolvedCartItem, 0, len(items))
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		resolved = append(resolved, structs.ResolvedCartItem{
			Product: product,
			Qty:     item.Qty,
		})
	}

	return resolved, nil
}
