package structs

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	TelegramID    string             `bson:"telegramId" json:"telegramId"`
	Products      []CartItem         `bson:"products" json:"products"`
	PaymentMethod string             `bson:"paymentMethod" json:"paymentMethod"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateOrder struct {
	TelegramID    string `json:"telegramId"`
	PaymentMethod string `json:"paymentMethod"`
}

// OrderView is an order with its product lines resolved.
type OrderView struct {
	ID            primitive.ObjectID `json:"id"`
	UserID        primitive.ObjectID `json:"userId"`
	TelegramID    string             `json:"telegramId"`
	Products      []ResolvedCartItem `json:"products"`
	PaymentMethod string             `json:"paymentMethod"`
	CreatedAt     time.Time          `json:"createdAt"`
}
