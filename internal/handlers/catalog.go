package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"grocermart/internal/models"
)

// GetCatalog lists active products in buyer shape, sorted by category then
// name. Deactivated products never appear here.
func GetCatalog(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /catalog"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		findOptions := options.Find().
			SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})

		cursor, err := db.Collection("products").Find(ctx, bson.M{"active": true}, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		var products []models.Product
		if err := cursor.All(ctx, &products); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		catalog := make([]models.BuyerProduct, 0, len(products))
		for _, p := range products {
			catalog = append(catalog, models.ToBuyerShape(p))
		}

		log.Printf("[%s] returning %d products", route, len(catalog))
		c.JSON(http.StatusOK, catalog)
	}
}
