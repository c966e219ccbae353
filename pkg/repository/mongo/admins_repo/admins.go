package adminsrepo

import (
	"context"
	"errors"
	"fmt"

	"tgshop/internal/structs"
	"tgshop/pkg/db"
	"tgshop/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const collectionName = "admins"

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
		GetByUsername(ctx context.Context, username string) (structs.Admin, error)
		Create(ctx context.Context, username, passwordHash string) error
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

func (r *repo) GetByUsername(ctx context.Context, username string) (structs.Admin, error) {
	var admin structs.Admin

	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return structs.Admin{}, structs.ErrNotFound
		}
		r.logger.Error(ctx, " err on collection.FindOne", zap.Error(err))
		return structs.Admin{}, fmt.Errorf("find admin by username: %w", err)
	}

	return admin, nil
}

func (r *repo) Create(ctx context.Context, username, passwordHash string) error {
	_, err := r.collection.InsertOne(ctx, structs.Admin{
		Username: username,
		Password: passwordHash,
	})
	if err != nil {
		r.logger.Error(ctx, " err on collection.InsertOne", zap.Error(err))
		return fmt.Errorf("insert admin: %w", err)
	}

	return nil
}
