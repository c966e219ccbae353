package main

import (
	"context"
	"os"
	"time"

	"tgshop/internal/structs"
	"tgshop/pkg/config"
	"tgshop/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

var products = []interface{}{
	structs.Product{
		Name:  "iPhone 14 Pro Max",
		Brand: "Apple",
		Price: 5400000,
		Stock: 5,
		Image: "https://example.com/iphone14promax.jpg",
	},
	structs.Product{
		Name:  "Samsung Galaxy S23 Ultra",
		Brand: "Samsung",
		Price: 4800000,
		Stock: 8,
		Image: "https://example.com/s23ultra.jpg",
	},
	structs.Product{
		Name:  "Xiaomi 13 Pro",
		Brand: "Xiaomi",
		Price: 3200000,
		Stock: 10,
		Image: "https://example.com/xiaomi13pro.jpg",
	},
}

// Seeds the sample catalog and exits.
func main() {
	cfg := config.NewConfig()
	log := logger.New(cfg.GetString("log.level"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.GetString("database.uri")))
	if err != nil {
		log.Error(ctx, "Err on mongo.Connect", zap.Error(err))
		os.Exit(1)
	}
	defer client.Disconnect(ctx)

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Error(ctx, "Err on client.Ping", zap.Error(err))
		os.Exit(1)
	}

	collection := client.Database(cfg.GetString("database.name")).Collection("products")
	res, err := collection.InsertMany(ctx, products)
	if err != nil {
		log.Error(ctx, "Err on collection.InsertMany", zap.Error(err))
		os.Exit(1)
	}

	log.Info(ctx, "Products inserted", zap.Int("count", len(res.InsertedIDs)))
}
