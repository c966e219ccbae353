package productsrepo

import (
	"context"
	"errors"
	"fmt"

	"tgshop/internal/structs"
	"tgshop/pkg/db"
	"tgshop/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const collectionName = "products"

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
		GetList(ctx context.Context) ([]structs.Product, error)
		GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]structs.Product, error)
		Create(ctx context.Context, req structs.CreateProduct) (structs.Product, error)
		Update(ctx context.Context, id primitive.ObjectID, req structs.PatchProduct) (structs.Product, error)
		Delete(ctx context.Context, id primitive.ObjectID) error
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

func (r *repo) GetList(ctx context.Context) ([]structs.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		r.logger.Error(ctx, " err on collection.Find", zap.Error(err))
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []structs.Product{}
	if err = cursor.All(ctx, &products); err != nil {
		r.logger.Error(ctx, " err on cursor.All", zap.Error(err))
		return nil, fmt.Errorf("decode products: %w", err)
	}

	return products, nil
}

func (r *repo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]structs.Product, error) {
	if len(ids) == 0 {
		return []structs.Product{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		r.logger.Error(ctx, " err on collection.Find", zap.Error(err))
		return nil, fmt.Errorf("find products by ids: %w", err)
	}
	defer cursor.Close(ctx)

	products := []structs.Product{}
	if err = cursor.All(ctx, &products); err != nil {
		r.logger.Error(ctx, " err on cursor.All", zap.Error(err))
		return nil, fmt.Errorf("decode products: %w", err)
	}

	return products, nil
}

func (r *repo) Create(ctx context.Context, req structs.CreateProduct) (structs.Product, error) {
	product := structs.Product{
		Name:  req.Name,
		Brand: req.Brand,
		Price: req.Price,
		Stock: req.Stock,
		Image: req.Image,
	}

	res, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		r.logger.Error(ctx, " err on collection.InsertOne", zap.Error(err))
		return structs.Product{}, fmt.Errorf("insert product: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}
	return product, nil
}

func (r *repo) Update(ctx context.Context, id primitive.ObjectID, req structs.PatchProduct) (structs.Product, error) {
	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Brand != nil {
		set["brand"] = *req.Brand
	}
	if req.Price != nil {
		set["price"] = *req.Price
	}
	if req.Stock != nil {
		set["stock"] = *req.Stock
	}
	if req.Image != nil {
		set["image"] = *req.Image
	}
	if len(set) == 0 {
		return structs.Product{}, structs.ErrBadRequest
	}

	var (
		product structs.Product
		opts    = options.FindOneAndUpdate().SetReturnDocument(options.After)
	)

	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return structs.Product{}, structs.ErrNotFound
		}
		r.logger.Error(ctx, " err on collection.FindOneAndUpdate", zap.Error(err))
		return structs.Product{}, fmt.Errorf("update product: %w", err)
	}

	return product, nil
}

func (r *repo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error(ctx, " err on collection.DeleteOne", zap.Error(err))
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return structs.ErrNotFound
	}

	return nil
}
