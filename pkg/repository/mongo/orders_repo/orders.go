package ordersrepo

import (
	"context"
	"fmt"
	"time"

	"tgshop/internal/structs"
	"tgshop/pkg/db"
	"tgshop/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const collectionName = "orders"

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		Logger logger.Logger
		DB     db.Store
	}

	Repo interface {
		Create(ctx context.Context, order structs.Order) (structs.Order, error)
		GetList(ctx context.Context) ([]structs.Order, error)
	}

	repo struct {
		logger     logger.Logger
		collection db.Collection
	}
)

func New(p Params) Repo {
	return &repo{
		logger:     p.Logger,
		collection: p.DB.Collection(collectionName),
	}
}

func (r *repo) Create(ctx context.Context, order structs.Order) (structs.Order, error) {
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	if order.Products == nil {
		order.Products = []structs.CartItem{}
	}

	res, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		r.logger.Error(ctx, " err on collection.InsertOne", zap.Error(err))
		return structs.Order{}, fmt.Errorf("insert order: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}
	return order, nil
}

func (r *repo) GetList(ctx context.Context) ([]structs.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		r.logger.Error(ctx, " err on collection.Find", zap.Error(err))
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []structs.Order{}
	if err = cursor.All(ctx, &orders); err != nil {
		r.logger.Error(ctx, " err on cursor.All", zap.Error(err))
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	return orders, nil
}
