package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"grocermart/internal/models"
)

type createOrderItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty" binding:"required"`
	Variety   string  `json:"variety"`
}

type createOrderRequest struct {
	Items           []createOrderItemRequest `json:"items" binding:"required"`
	TotalAmount     float64                  `json:"totalAmount"`
	ShippingAddress string                   `json:"shippingAddress" binding:"required"`
}

type orderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func buildOrderItems(req createOrderRequest) ([]models.OrderItem, string) {
	if len(req.Items) == 0 {
		return nil, "at least one item is required"
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		if strings.TrimSpace(item.ProductID) == "" {
			return nil, "item productId is required"
		}
		if item.Qty <= 0 {
			return nil, "item qty must be greater than zero"
		}
		if item.Price < 0 {
			return nil, "item price must be >= 0"
		}
		items = append(items, models.OrderItem{
			ProductID: strings.TrimSpace(item.ProductID),
			Title:     strings.TrimSpace(item.Title),
			Price:     item.Price,
			Qty:       item.Qty,
			Variety:   strings.TrimSpace(item.Variety),
		})
	}
	return items, ""
}

// CreateOrder persists the order with a snapshot of the buyer identity,
// then clears the buyer's cart. The order commit is authoritative: the cart
// clear is retried once and a terminal failure is logged, never rolled back.
func CreateOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		userIDValue, ok := c.Get("userId")
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}
		userID := userIDValue.(primitive.ObjectID)

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		items, problem := buildOrderItems(req)
		if problem != "" {
			respondWithError(c, http.StatusBadRequest, route, problem)
			return
		}

		// The item snapshot is authoritative for the total; a client value
		// that disagrees with it is rejected rather than trusted.
		if !models.TotalMatches(req.TotalAmount, items) {
			respondWithError(c, http.StatusBadRequest, route, "totalAmount does not match items")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var account models.Account
		err := db.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&account)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "account not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		order := models.Order{
			UserID:          userID,
			UserName:        account.Name,
			UserEmail:       account.Email,
			Items:           items,
			TotalAmount:     models.OrderTotal(items),
			Status:          models.StatusPending,
			ShippingAddress: strings.TrimSpace(req.ShippingAddress),
			OrderDate:       time.Now(),
		}

		res, err := db.Collection("orders").InsertOne(ctx, order)
		if err != nil {
			log.Println("[ORDER] [ERROR] insert failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			order.ID = id
		}

		if err := clearCart(ctx, db, userID); err != nil {
			// One retry, then give up: the committed order stands either way.
			if retryErr := clearCart(ctx, db, userID); retryErr != nil {
				log.Printf("[ORDER] [ERROR] cart clear failed for order %s: %v", order.ID.Hex(), retryErr)
			}
		}

		log.Println("[ORDER] [INFO] order created:", order.ID.Hex())
		c.JSON(http.StatusCreated, order)
	}
}

// GetOrders lists all orders, newest first.
func GetOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		findOptions := options.Find().
			SetSort(bson.D{{Key: "orderDate", Value: -1}})

		cursor, err := db.Collection("orders").Find(ctx, bson.M{}, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		var orders []models.Order
		if err := cursor.All(ctx, &orders); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// UpdateOrderStatus overwrites the status with any of the five enumerated
// values. Out-of-set values are rejected before the store is touched.
func UpdateOrderStatus(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /orders/:id/status"
		defer handlePanic(c, route)

		var req orderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "status is required")
			return
		}
		if !models.ValidOrderStatus(req.Status) {
			respondWithError(c, http.StatusBadRequest, route, "invalid status")
			return
		}

		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("orders").UpdateByID(ctx, orderID, bson.M{
			"$set": bson.M{"status": req.Status},
		})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.MatchedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "order not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": orderID.Hex(), "status": req.Status})
	}
}
