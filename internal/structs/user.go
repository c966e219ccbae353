package structs

import "go.mongodb.org/mongo-driver/bson/primitive"

// Conversation states written by the chat-bot orchestrator. The server stores
// whatever state string it is given; these are only the values it sets itself.
const (
	StateStart    = "START"
	StateLoggedIn = "LOGGED_IN"
)

type CartItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Qty       int64              `bson:"qty" json:"qty"`
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username,omitempty" json:"username,omitempty"`
	Password     string             `bson:"password,omitempty" json:"-"`
	TelegramID   string             `bson:"telegramId" json:"telegramId"`
	State        string             `bson:"state" json:"state"`
	TempUsername string             `bson:"tempUsername,omitempty" json:"tempUsername,omitempty"`
	TempPassword string             `bson:"tempPassword,omitempty" json:"tempPassword,omitempty"`
	Cart         []CartItem         `bson:"cart" json:"cart"`
}

type UserState struct {
	UserID       primitive.ObjectID `json:"userId"`
	State        string             `json:"state"`
	TempUsername string             `json:"tempUsername"`
	TempPassword string             `json:"tempPassword"`
	Cart         []CartItem         `json:"cart"`
}

type UpdateUserState struct {
	TelegramID   string `json:"telegramId"`
	State        string `json:"state"`
	TempUsername string `json:"tempUsername"`
	TempPassword string `json:"tempPassword"`
}

type Register struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	TelegramID string `json:"telegramId"`
}

type Login struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	TelegramID string `json:"telegramId"`
}
