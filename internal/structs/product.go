package structs

import "go.mongodb.org/mongo-driver/bson/primitive"

type Product struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Brand string             `bson:"brand" json:"brand"`
	Price int64              `bson:"price" json:"price"`
	Stock int64              `bson:"stock" json:"stock"`
	Image string             `bson:"image" json:"image"`
}

// CreateProduct whitelists the fields an admin may set; anything else in the
// request body is dropped.
type CreateProduct struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Price int64  `json:"price"`
	Stock int64  `json:"stock"`
	Image string `json:"image"`
}

type PatchProduct struct {
	Name  *string `json:"name"`
	Brand *string `json:"brand"`
	Price *int64  `json:"price"`
	Stock *int64  `json:"stock"`
	Image *string `json:"image"`
}
