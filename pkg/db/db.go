package db

import (
	"context"
	"time"

	"tgshop/pkg/config"
	"tgshop/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Options(
	fx.Provide(NewStore),
)

// Collection is the subset of *mongo.Collection the repositories rely on.
type Collection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

type Store interface {
	Collection(name string) Collection
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Params struct {
	fx.In
	Lifecycle fx.Lifecycle
	Config    config.IConfig
	Logger    logger.Logger
}

type store struct {
	client *mongo.Client
	db     *mongo.Database
	logger logger.Logger
}

func NewStore(params Params) (Store, error) {

	var (
		uri  = params.Config.GetString("database.uri")
		name = params.Config.GetString("database.name")
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		params.Logger.Error(ctx, "Err on mongo.Connect", zap.Error(err))
		return nil, err
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		params.Logger.Error(ctx, "Err on client.Ping", zap.Error(err))
		return nil, err
	}

	params.Logger.Info(ctx, "DB: Connected successfully", zap.String("database", name))

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return &store{
		client: client,
		db:     client.Database(name),
		logger: params.Logger,
	}, nil
}

func (s *store) Collection(name string) Collection {
	return s.db.Collection(name)
}

// WithTransaction runs fn inside a single MongoDB transaction. Operations
// issued with the callback context join the session.
func (s *store) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
