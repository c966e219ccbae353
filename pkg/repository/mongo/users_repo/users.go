package usersrepo

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

const collectionName = "users"

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
		CreateBare(ctx context.Context, telegramID string) (structs.User, error)
		GetByTelegramID(ctx context.Context, telegramID string) (structs.User, error)
		GetByUsername(ctx context.Context, username string) (structs.User, error)
		UpdateState(ctx context.Context, req structs.UpdateUserState) (structs.User, error)
		SetCredentials(ctx context.Context, telegramID, username, passwordHash string) (structs.User, error)
		BindTelegram(ctx context.Context, userID primitive.ObjectID, telegramID string) (structs.User, error)
		PushCartItem(ctx context.Context, telegramID string, item structs.CartItem) (structs.User, error)
		ResetCart(ctx context.Context, userID primitive.ObjectID) error
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

func (r *repo) CreateBare(ctx context.Context, telegramID string) (structs.User, error) {
	user := structs.User{
		TelegramID: telegramID,
		State:      structs.StateStart,
		Cart:       []structs.CartItem{},
	}

	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		r.logger.Error(ctx, " err on collection.InsertOne", zap.Error(err))
		return structs.User{}, fmt.Errorf("insert user: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return user, nil
}

func (r *repo) GetByTelegramID(ctx context.Context, telegramID string) (structs.User, error) {
	var user structs.User

	err := r.collection.FindOne(ctx, bson.M{"telegramId": telegramID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return structs.User{}, structs.ErrNotFound
		}
		r.logger.Error(ctx, " err on collection.FindOne", zap.Error(err))
		return structs.User{}, fmt.Errorf("find user by telegramId: %w", err)
	}

	return user, nil
}

func (r *repo) GetByUsername(ctx context.Context, username string) (structs.User, error) {
	var user structs.User

	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return structs.User{}, structs.ErrNotFound
		}
		r.logger.Error(ctx, " err on collection.FindOne", zap.Error(err))
		return structs.User{}, fmt.Errorf("find user by username: %w", err)
	}

	return user, nil
}

func (r *repo) UpdateState(ctx context.Context, req structs.UpdateUserState) (structs.User, error) {
	var (
		user   structs.User
		filter = bson.M{"telegramId": req.TelegramID}
		update = bson.M{"$set": bson.M{
			"state":        req.State,
			"tempUsername": req.TempUsername,
			"tempPassword": req.TempPassword,
		}}
		opts = options.FindOneAndUpdate().SetReturnDocument(options.After)
	)

	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return structs.User{}, structs.ErrNotFound
		}
		r.logger.Error(ctx, " err on collection.FindOneAndUpdate", zap.Error(err))
		return structs.User{}, fmt.Errorf("update user state: %w", err)
	}

	return user, nil
}

func (r *repo) SetCredentials(ctx context.Context, telegramID, username, passwordHash string) (structs.User, error) {
	var (
		user   structs.User
		filter = bson.M{"telegramId": telegramID}
		update = bson.M{"$set": bson.M{
			"username": username,
			"password": passwordHash,
			"state":    structs.StateLoggedIn,
		}}
		opts = options.FindOneAndUpdate().SetReturnDocument(options.After)
	)

	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return structs.User{}, structs.ErrNotFound
		}
		r.logger.Error(ctx, " err on collection.FindOneAndUpdate", zap.Error(err))
		return structs.User{}, fmt.Errorf("set user credentials: %w", err)
	}

	return user, nil
}

func (r *repo) BindTelegram(ctx context.Context, userID primitive.ObjectID, telegramID string) (structs.User, error) {
	var (
		user   structs.User
		filter = bson.M{"_id": userID}
		update = bson.M{"$set": bson.M{
			"telegramId": telegramID,
			"state":      structs.StateLoggedIn,
		}}
		opts = options.FindOneAndUpdate().SetReturnDocument(options.After)
	)

	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return structs.User{}, structs.ErrNotFound
		}
		r.logger.Error(ctx, " err on collection.FindOneAndUpdate", zap.Error(err))
		return structs.User{}, fmt.Errorf("bind telegram id: %w", err)
	}

	return user, nil
}

func (r *repo) PushCartItem(ctx context.Context, telegramID string, item structs.CartItem) (structs.User, error) {
	var (
		user   structs.User
		filter = bson.M{"telegramId": telegramID}
		update = bson.M{"$push": bson.M{"cart": item}}
		opts   = options.FindOneAndUpdate().SetReturnDocument(options.After)
	)

	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return structs.User{}, structs.ErrNotFound
		}
		r.logger.Error(ctx, " err on collection.FindOneAndUpdate", zap.Error(err))
		return structs.User{}, fmt.Errorf("push cart item: %w", err)
	}

	return user, nil
}

func (r *repo) ResetCart(ctx context.Context, userID primitive.ObjectID) error {
	var (
		filter = bson.M{"_id": userID}
		update = bson.M{"$set": bson.M{
			"cart":  []structs.CartItem{},
			"state": structs.StateStart,
		}}
	)

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		r.logger.Error(ctx, " err on collection.UpdateOne", zap.Error(err))
		return fmt.Errorf("reset cart: %w", err)
	}
	if res.MatchedCount == 0 {
		return structs.ErrNotFound
	}

	return nil
}
