package product

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"tgshop/internal/structs"
	"tgshop/pkg/logger"
	"tgshop/pkg/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeRedis struct {
	values map[string][]byte
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string][]byte{}}
}

func (f *fakeRedis) Save(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.values[key] = b
	return nil
}

func (f *fakeRedis) SaveObj(ctx context.Context, key string, value any, dur time.Duration) error {
	return f.Save(ctx, key, value, dur)
}

func (f *fakeRedis) Find(_ context.Context, key string) (string, error) {
	b, ok := f.values[key]
	if !ok {
		return "", redis.ErrNotFound
	}
	return string(b), nil
}

func (f *fakeRedis) FindObj(_ context.Context, key string, value any) error {
	b, ok := f.values[key]
	if !ok {
		return redis.ErrNotFound
	}
	return json.Unmarshal(b, value)
}

func (f *fakeRedis) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

type fakeProductsRepo struct {
	products []structs.Product
	listCall int
}

func (f *fakeProductsRepo) GetList(context.Context) ([]structs.Product, error) {
	f.listCall++
	return f.products, nil
}

func (f *fakeProductsRepo) GetByIDs(context.Context, []primitive.ObjectID) ([]structs.Product, error) {
	return f.products, nil
}

func (f *fakeProductsRepo) Create(_ context.Context, req structs.CreateProduct) (structs.Product, error) {
	product := structs.Product{
		ID:    primitive.NewObjectID(),
		Name:  req.Name,
		Brand: req.Brand,
		Price: req.Price,
		Stock: req.Stock,
		Image: req.Image,
	}
	f.products = append(f.products, product)
	return product, nil
}

func (f *fakeProductsRepo) Update(_ context.Context, id primitive.ObjectID, req structs.PatchProduct) (structs.Product, error) {
	for i := range f.products {
		if f.products[i].ID != id {
			continue
		}
		if req.Price != nil {
			f.products[i].Price = *req.Price
		}
		if req.Name != nil {
			f.products[i].Name = *req.Name
		}
		return f.products[i], nil
	}
	return structs.Product{}, structs.ErrNotFound
}

func (f *fakeProductsRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return structs.ErrNotFound
}

func newService(repo *fakeProductsRepo, cache *fakeRedis) Service {
	return New(Params{
		ProductsRepo: repo,
		Redis:        cache,
		Logger:       logger.New("error"),
	})
}

func TestGetListPopulatesCache(t *testing.T) {
	repo := &fakeProductsRepo{products: []structs.Product{
		{ID: primitive.NewObjectID(), Name: "iPhone 14 Pro Max", Brand: "Apple", Price: 5400000, Stock: 5},
	}}
	cache := newFakeRedis()
	svc := newService(repo, cache)
	ctx := context.Background()

	first, err := svc.GetList(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, repo.listCall)

	// Second call is served from the cache.
	second, err := svc.GetList(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCall)
}

func TestCreateInvalidatesCache(t *testing.T) {
	repo := &fakeProductsRepo{}
	cache := newFakeRedis()
	svc := newService(repo, cache)
	ctx := context.Background()

	_, err := svc.GetList(ctx)
	require.NoError(t, err)
	_, cached := cache.values[catalogCacheKey]
	require.True(t, cached)

	created, err := svc.Create(ctx, structs.CreateProduct{Name: "AirPods Pro", Brand: "Apple", Price: 250000, Stock: 20})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())

	_, cached = cache.values[catalogCacheKey]
	assert.False(t, cached)

	listed, err := svc.GetList(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestUpdateInvalidID(t *testing.T) {
	svc := newService(&fakeProductsRepo{}, newFakeRedis())

	_, err := svc.Update(context.Background(), "nope", structs.PatchProduct{})
	assert.ErrorIs(t, err, structs.ErrBadRequest)
}

func TestUpdateUnknownProduct(t *testing.T) {
	svc := newService(&fakeProductsRepo{}, newFakeRedis())

	name := "renamed"
	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), structs.PatchProduct{Name: &name})
	assert.ErrorIs(t, err, structs.ErrNotFound)
}

func TestDeleteInvalidatesCache(t *testing.T) {
	repo := &fakeProductsRepo{}
	cache := newFakeRedis()
	svc := newService(repo, cache)
	ctx := context.Background()

	created, err := svc.Create(ctx, structs.CreateProduct{Name: "Samsung Galaxy S23 Ultra", Brand: "Samsung", Price: 4800000, Stock: 8})
	require.NoError(t, err)

	_, err = svc.GetList(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID.Hex()))
	_, cached := cache.values[catalogCacheKey]
	assert.False(t, cached)
}

func TestDeleteInvalidID(t *testing.T) {
	svc := newService(&fakeProductsRepo{}, newFakeRedis())

	err := svc.Delete(context.Background(), "zz")
	assert.ErrorIs(t, err, structs.ErrBadRequest)
}
