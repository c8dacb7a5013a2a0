package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one entry of a buyer's persisted cart snapshot.
type CartItem struct {
	ProductID string `bson:"productId" json:"productId"`
	Variety   string `bson:"variety,omitempty" json:"variety,omitempty"`
	Qty       int    `bson:"qty" json:"qty"`
}

// Account is a buyer account. The cart is embedded and fully replaced on
// every save; there are no merge semantics.
type Account struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	Address      string             `bson:"address" json:"address"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Cart         []CartItem         `bson:"cart" json:"cart"`
	Date         time.Time          `bson:"date" json:"date"`
}

// NormalizeEmail is the canonical form used for storage and uniqueness
// checks, so addresses differing only by case collide.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
