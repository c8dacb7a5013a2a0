package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SellerApplication is an append-only onboarding request. It is created on
// submission, removed by an administrator, and otherwise never mutated.
type SellerApplication struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SellerName         string             `bson:"sellerName" json:"sellerName"`
	SellerEmail        string             `bson:"sellerEmail" json:"sellerEmail"`
	ProductName        string             `bson:"productName" json:"productName"`
	ProductPrice       float64            `bson:"productPrice" json:"productPrice"`
	ProductDescription string             `bson:"productDescription,omitempty" json:"productDescription,omitempty"`
	Date               time.Time          `bson:"date" json:"date"`
}
