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

// Price is a pointer so an explicit zero passes "required" binding; the gte
// tag still rejects negatives.
type sellerApplicationRequest struct {
	SellerName         string   `json:"sellerName" binding:"required"`
	SellerEmail        string   `json:"sellerEmail" binding:"required,email"`
	ProductName        string   `json:"productName" binding:"required"`
	ProductPrice       *float64 `json:"productPrice" binding:"required,gte=0"`
	ProductDescription string   `json:"productDescription"`
}

// SubmitApplication stores a seller application as-is. No deduplication:
// the same seller may apply repeatedly.
func SubmitApplication(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /sellers"
		defer handlePanic(c, route)

		var req sellerApplicationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		application := models.SellerApplication{
			SellerName:         strings.TrimSpace(req.SellerName),
			SellerEmail:        models.NormalizeEmail(req.SellerEmail),
			ProductName:        strings.TrimSpace(req.ProductName),
			ProductPrice:       *req.ProductPrice,
			ProductDescription: strings.TrimSpace(req.ProductDescription),
			Date:               time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("seller_applications").InsertOne(ctx, application)
		if err != nil {
			log.Println("[SELLER] [ERROR] insert failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			application.ID = id
		}

		c.JSON(http.StatusCreated, application)
	}
}

// ListApplications returns all applications, newest first.
func ListApplications(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /sellers"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		findOptions := options.Find().
			SetSort(bson.D{{Key: "date", Value: -1}})

		cursor, err := db.Collection("seller_applications").Find(ctx, bson.M{}, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		var applications []models.SellerApplication
		if err := cursor.All(ctx, &applications); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, applications)
	}
}

func DeleteApplication(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /sellers/:id"
		defer handlePanic(c, route)

		applicationID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("seller_applications").DeleteOne(ctx, bson.M{"_id": applicationID})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.DeletedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "application not found")
			return
		}

		c.Status(http.StatusNoContent)
	}
}
