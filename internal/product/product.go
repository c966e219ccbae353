package product

import (
	"context"
	"errors"
	"time"

	"tgshop/internal/structs"
	"tgshop/pkg/logger"
	"tgshop/pkg/redis"
	productsRepo "tgshop/pkg/repository/mongo/products_repo"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	catalogCacheKey = "products"
	catalogCacheTTL = time.Minute
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		ProductsRepo productsRepo.Repo
		Redis        redis.Client
		Logger       logger.Logger
	}

	Service interface {
		GetList(ctx context.Context) ([]structs.Product, error)
		Create(ctx context.Context, req structs.CreateProduct) (structs.Product, error)
		Update(ctx context.Context, id string, req structs.PatchProduct) (structs.Product, error)
		Delete(ctx context.Context, id string) error
	}

	service struct {
		productsRepo productsRepo.Repo
		redis        redis.Client
		logger       logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		productsRepo: p.ProductsRepo,
		redis:        p.Redis,
		logger:       p.Logger,
	}
}

// GetList serves the catalog from redis when possible; cache failures fall
// through to the repository.
func (s *service) GetList(ctx context.Context) ([]structs.Product, error) {
	var cached []structs.Product
	if err := s.redis.FindObj(ctx, catalogCacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, redis.ErrNotFound) {
		s.logger.Warn(ctx, "->redis.FindObj", zap.Error(err))
	}

	products, err := s.productsRepo.GetList(ctx)
	if err != nil {
		s.logger.Error(ctx, "->productsRepo.GetList", zap.Error(err))
		return nil, err
	}

	if err := s.redis.SaveObj(ctx, catalogCacheKey, products, catalogCacheTTL); err != nil {
		s.logger.Warn(ctx, "->redis.SaveObj", zap.Error(err))
	}

	return products, nil
}

func (s *service) Create(ctx context.Context, req structs.CreateProduct) (structs.Product, error) {
	product, err := s.productsRepo.Create(ctx, req)
	if err != nil {
		s.logger.Error(ctx, "->productsRepo.Create", zap.Error(err))
		return structs.Product{}, err
	}

	s.invalidateCatalog(ctx)
	return product, nil
}

func (s *service) Update(ctx context.Context, id string, req structs.PatchProduct) (structs.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return structs.Product{}, structs.ErrBadRequest
	}

	product, err := s.productsRepo.Update(ctx, oid, req)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) || errors.Is(err, structs.ErrBadRequest) {
			return structs.Product{}, err
		}
		s.logger.Error(ctx, "->productsRepo.Update", zap.Error(err))
		return structs.Product{}, err
	}

	s.invalidateCatalog(ctx)
	return product, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return structs.ErrBadRequest
	}

	if err := s.productsRepo.Delete(ctx, oid); err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return err
		}
		s.logger.Error(ctx, "->productsRepo.Delete", zap.Error(err))
		return err
	}

	s.invalidateCatalog(ctx)
	return nil
}

func (s *service) invalidateCatalog(ctx context.Context) {
	if err := s.redis.Delete(ctx, catalogCacheKey); err != nil {
		s.logger.Warn(ctx, "->redis.Delete", zap.Error(err))
	}
}
