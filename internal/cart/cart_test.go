package cart

import (
	"context"
	"testing"

	"tgshop/internal/structs"
	"tgshop/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

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

func (f *fakeUsersRepo) PushCartItem(_ context.Context, telegramID string, item structs.CartItem) (structs.User, error) {
	if f.user == nil || f.user.TelegramID != telegramID {
		return structs.User{}, structs.ErrNotFound
	}
	f.user.Cart = append(f.user.Cart, item)
	return *f.user, nil
}

func (f *fakeUsersRepo) ResetCart(context.Context, primitive.ObjectID) error {
	return structs.ErrNotFound
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

func newService(users *fakeUsersRepo, products *fakeProductsRepo) Service {
	return New(Params{
		UsersRepo:    users,
		ProductsRepo: products,
		Logger:       logger.New("error"),
	})
}

func TestAddInvalidProductID(t *testing.T) {
	svc := newService(&fakeUsersRepo{}, &fakeProductsRepo{})

	_, err := svc.Add(context.Background(), structs.AddToCart{TelegramID: "T1", ProductID: "not-hex"})
	assert.ErrorIs(t, err, structs.ErrBadRequest)
}

func TestAddUnknownUser(t *testing.T) {
	svc := newService(&fakeUsersRepo{}, &fakeProductsRepo{})

	_, err := svc.Add(context.Background(), structs.AddToCart{
		TelegramID: "T1",
		ProductID:  primitive.NewObjectID().Hex(),
	})
	assert.ErrorIs(t, err, structs.ErrNotFound)
}

func TestAddDuplicatesAreSeparateLines(t *testing.T) {
	users := &fakeUsersRepo{user: &structs.User{
		ID:         primitive.NewObjectID(),
		TelegramID: "T1",
		State:      structs.StateLoggedIn,
		Cart:       []structs.CartItem{},
	}}
	svc := newService(users, &fakeProductsRepo{})
	ctx := context.Background()

	productID := primitive.NewObjectID()

	first, err := svc.Add(ctx, structs.AddToCart{TelegramID: "T1", ProductID: productID.Hex()})
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.Add(ctx, structs.AddToCart{TelegramID: "T1", ProductID: productID.Hex()})
	require.NoError(t, err)
	require.Len(t, second, 2)

	assert.Equal(t, int64(1), second[0].Qty)
	assert.Equal(t, int64(1), second[1].Qty)
	assert.Equal(t, productID, second[0].ProductID)
	assert.Equal(t, productID, second[1].ProductID)
}

func TestGetResolvesProducts(t *testing.T) {
	phone := structs.Product{
		ID:    primitive.NewObjectID(),
		Name:  "iPhone 14 Pro Max",
		Brand: "Apple",
		Price: 5400000,
		Stock: 5,
	}
	users := &fakeUsersRepo{user: &structs.User{
		ID:         primitive.NewObjectID(),
		TelegramID: "T1",
		Cart: []structs.CartItem{
			{ProductID: phone.ID, Qty: 1},
		},
	}}
	svc := newService(users, &fakeProductsRepo{products: []structs.Product{phone}})

	resolved, err := svc.Get(context.Background(), "T1")
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "iPhone 14 Pro Max", resolved[0].Product.Name)
	assert.Equal(t, int64(1), resolved[0].Qty)
}

func TestGetDropsMissingProducts(t *testing.T) {
	users := &fakeUsersRepo{user: &structs.User{
		ID:         primitive.NewObjectID(),
		TelegramID: "T1",
		Cart: []structs.CartItem{
			{ProductID: primitive.NewObjectID(), Qty: 1},
		},
	}}
	svc := newService(users, &fakeProductsRepo{})

	resolved, err := svc.Get(context.Background(), "T1")
	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestGetUnknownUser(t *testing.T) {
	svc := newService(&fakeUsersRepo{}, &fakeProductsRepo{})

	_, err := svc.Get(context.Background(), "T1")
	assert.ErrorIs(t, err, structs.ErrNotFound)
}
