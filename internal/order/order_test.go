package order

import (
	"context"
	"errors"
	"testing"

	"tgshop/internal/structs"
	"tgshop/pkg/db"
	"tgshop/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeStore struct {
	transactions int
}

func (f *fakeStore) Collection(string) db.Collection { return nil }

func (f *fakeStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.transactions++
	return fn(ctx)
}

type fakeUsersRepo struct {
	user *structs.User
}

func (f *fakeUsersRepo) CreateBare(context.Context, string) (structs.User, error) {
	return structs.User{}, structs.ErrNotFound
}

func (f *fakeUsersRepo) GetByTelegramID(_ context.Context, telegramID string) (structs.User, error) {
	if f.user != nil && f.user.TelegramID == telegramID {
		return *f.user, nil
	}
	return structs.User{}, structs.ErrNotFound
}

func (f *fakeUsersRepo) GetByUsername(context.Context, string) (structs.User, error) {
	return structs.User{}, structs.ErrNotFound
}

func (f *fakeUsersRepo) UpdateState(context.Context, structs.UpdateUserState) (structs.User, error) {
	return structs.User{}, structs.ErrNotFound
}

func (f *fakeUsersRepo) SetCredentials(context.Context, string, string, string) (structs.User, error) {
	return structs.User{}, structs.ErrNotFound
}

func (f *fakeUsersRepo) BindTelegram(context.Context, primitive.ObjectID, string) (structs.User, error) {
	return structs.User{}, structs.ErrNotFound
}

func (f *fakeUsersRepo) PushCartItem(context.Context, string, structs.CartItem) (structs.User, error) {
	return structs.User{}, structs.ErrNotFound
}

func (f *fakeUsersRepo) ResetCart(_ context.Context, userID primitive.ObjectID) error {
	if f.user == nil || f.user.ID != userID {
		return structs.ErrNotFound
	}
	f.user.Cart = []structs.CartItem{}
	f.user.State = structs.StateStart
	return nil
}

type fakeOrdersRepo struct {
	orders    []structs.Order
	createErr error
}

func (f *fakeOrdersRepo) Create(_ context.Context, order structs.Order) (structs.Order, error) {
	if f.createErr != nil {
		return structs.Order{}, f.createErr
	}
	order.ID = primitive.NewObjectID()
	f.orders = append(f.orders, order)
	return order, nil
}

func (f *fakeOrdersRepo) GetList(context.Context) ([]structs.Order, error) {
	return f.orders, nil
}

type fakeProductsRepo struct {
	products []structs.Product
}

func (f *fakeProductsRepo) GetList(context.Context) ([]structs.Product, error) {
	return f.products, nil
}

func (f *fakeProductsRepo) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]structs.Product, error) {
	found := []structs.Product{}
	for _, p := range f.products {
		for _, id := range ids {
			if p.ID == id {
				found = append(found, p)
				break
			}
		}
	}
	return found, nil
}

func (f *fakeProductsRepo) Create(context.Context, structs.CreateProduct) (structs.Product, error) {
	return structs.Product{}, nil
}

func (f *fakeProductsRepo) Update(context.Context, primitive.ObjectID, structs.PatchProduct) (structs.Product, error) {
	return structs.Product{}, structs.ErrNotFound
}

func (f *fakeProductsRepo) Delete(context.Context, primitive.ObjectID) error {
	return structs.ErrNotFound
}

func newService(store *fakeStore, users *fakeUsersRepo, orders *fakeOrdersRepo, products *fakeProductsRepo) Service {
	return New(Params{
		DB:           store,
		UsersRepo:    users,
		OrdersRepo:   orders,
		ProductsRepo: products,
		Logger:       logger.New("error"),
	})
}

func TestCreateSnapshotsCartAndResets(t *testing.T) {
	productID := primitive.NewObjectID()
	users := &fakeUsersRepo{user: &structs.User{
		ID:         primitive.NewObjectID(),
		TelegramID: "T1",
		State:      structs.StateLoggedIn,
		Cart: []structs.CartItem{
			{ProductID: productID, Qty: 1},
		},
	}}
	store := &fakeStore{}
	orders := &fakeOrdersRepo{}
	svc := newService(store, users, orders, &fakeProductsRepo{})

	err := svc.Create(context.Background(), structs.CreateOrder{TelegramID: "T1", PaymentMethod: "cash"})
	require.NoError(t, err)

	require.Len(t, orders.orders, 1)
	created := orders.orders[0]
	assert.Equal(t, "T1", created.TelegramID)
	assert.Equal(t, "cash", created.PaymentMethod)
	require.Len(t, created.Products, 1)
	assert.Equal(t, productID, created.Products[0].ProductID)

	assert.Empty(t, users.user.Cart)
	assert.Equal(t, structs.StateStart, users.user.State)
	assert.Equal(t, 1, store.transactions)
}

func TestCreateUnknownUser(t *testing.T) {
	svc := newService(&fakeStore{}, &fakeUsersRepo{}, &fakeOrdersRepo{}, &fakeProductsRepo{})

	err := svc.Create(context.Background(), structs.CreateOrder{TelegramID: "T1", PaymentMethod: "cash"})
	assert.ErrorIs(t, err, structs.ErrNotFound)
}

func TestCreateFailedInsertKeepsCart(t *testing.T) {
	users := &fakeUsersRepo{user: &structs.User{
		ID:         primitive.NewObjectID(),
		TelegramID: "T1",
		Cart: []structs.CartItem{
			{ProductID: primitive.NewObjectID(), Qty: 1},
		},
	}}
	orders := &fakeOrdersRepo{createErr: errors.New("write failed")}
	svc := newService(&fakeStore{}, users, orders, &fakeProductsRepo{})

	err := svc.Create(context.Background(), structs.CreateOrder{TelegramID: "T1", PaymentMethod: "cash"})
	require.Error(t, err)

	// The transaction callback failed before the cart reset ran.
	assert.Len(t, users.user.Cart, 1)
}

func TestGetListResolvesProducts(t *testing.T) {
	phone := structs.Product{
		ID:    primitive.NewObjectID(),
		Name:  "Xiaomi 13 Pro",
		Brand: "Xiaomi",
		Price: 3200000,
	}
	userID := primitive.NewObjectID()
	orders := &fakeOrdersRepo{orders: []structs.Order{
		{
			ID:            primitive.NewObjectID(),
			UserID:        userID,
			TelegramID:    "T1",
			Products:      []structs.CartItem{{ProductID: phone.ID, Qty: 1}},
			PaymentMethod: "cash",
		},
	}}
	svc := newService(&fakeStore{}, &fakeUsersRepo{}, orders, &fakeProductsRepo{products: []structs.Product{phone}})

	views, err := svc.GetList(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "T1", views[0].TelegramID)
	assert.Equal(t, "cash", views[0].PaymentMethod)
	require.Len(t, views[0].Products, 1)
	assert.Equal(t, "Xiaomi 13 Pro", views[0].Products[0].Product.Name)
}

func TestGetListEmpty(t *testing.T) {
	svc := newService(&fakeStore{}, &fakeUsersRepo{}, &fakeOrdersRepo{}, &fakeProductsRepo{})

	views, err := svc.GetList(context.Background())
	require.NoError(t, err)
	assert.Empty(t, views)
}
