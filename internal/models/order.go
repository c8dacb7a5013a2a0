package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

// OrderStatuses enumerates every legal order status. No transition graph is
// enforced; any status is reachable from any other.
var OrderStatuses = []string{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

func ValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// OrderItem is a point-in-time copy of catalog data, immune to later
// product edits.
type OrderItem struct {
	ProductID string  `bson:"productId" json:"productId"`
	Title     string  `bson:"title" json:"title"`
	Price     float64 `bson:"price" json:"price"`
	Qty       int     `bson:"qty" json:"qty"`
	Variety   string  `bson:"variety,omitempty" json:"variety,omitempty"`
}

// Order snapshots the buyer identity at placement time; it is never
// re-resolved from the account later.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	UserName        string             `bson:"userName" json:"userName"`
	UserEmail       string             `bson:"userEmail" json:"userEmail"`
	Items           []OrderItem        `bson:"items" json:"items"`
	TotalAmount     float64            `bson:"totalAmount" json:"totalAmount"`
	Status          string             `bson:"status" json:"status"`
	ShippingAddress string             `bson:"shippingAddress" json:"shippingAddress"`
	OrderDate       time.Time          `bson:"orderDate" json:"orderDate"`
}

// TotalTolerance is the largest accepted drift between a client-submitted
// total and the recomputed one.
const TotalTolerance = 0.01

// OrderTotal recomputes the amount implied by the item snapshot.
func OrderTotal(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Qty)
	}
	return total
}

// TotalMatches reports whether a submitted total agrees with the snapshot.
func TotalMatches(submitted float64, items []OrderItem) bool {
	return math.Abs(submitted-OrderTotal(items)) <= TotalTolerance
}
