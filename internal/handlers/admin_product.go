package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"grocermart/internal/models"
)

// GetAllProducts lists every product regardless of active state, newest
// first.
func GetAllProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/products"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		findOptions := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := db.Collection("products").Find(ctx, bson.M{}, findOptions)
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

		c.JSON(http.StatusOK, products)
	}
}

func CreateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/products"
		defer handlePanic(c, route)

		var payload models.ProductPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}
		fields := payload.StorageFields()

		if fields.Name == nil || strings.TrimSpace(*fields.Name) == "" {
			respondWithError(c, http.StatusBadRequest, route, "name is required")
			return
		}
		if fields.Category == nil || strings.TrimSpace(*fields.Category) == "" {
			respondWithError(c, http.StatusBadRequest, route, "category is required")
			return
		}
		if fields.Price == nil {
			respondWithError(c, http.StatusBadRequest, route, "price is required")
			return
		}
		if *fields.Price < 0 {
			respondWithError(c, http.StatusBadRequest, route, "price must be >= 0")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		products := db.Collection("products")
		slugTaken := func(id string) (bool, error) {
			count, err := products.CountDocuments(ctx, bson.M{"productId": id})
			return count > 0, err
		}

		var productID string
		if fields.ProductID != nil && strings.TrimSpace(*fields.ProductID) != "" {
			normalized, err := models.NormalizeProductID(*fields.ProductID)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, err.Error())
				return
			}
			taken, err := slugTaken(normalized)
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
			if taken {
				respondWithError(c, http.StatusConflict, route, "product id already exists")
				return
			}
			productID = normalized
		} else {
			derived, err := models.DeriveProductID(*fields.Name, time.Now(), slugTaken)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, err.Error())
				return
			}
			productID = derived
		}

		isLiquid, unit := models.ResolveLiquidUnit(fields.IsLiquid, fields.Unit, false)

		imageURL := models.DefaultImageURL
		if fields.ImageURL != nil && strings.TrimSpace(*fields.ImageURL) != "" {
			imageURL = strings.TrimSpace(*fields.ImageURL)
		}
		description := models.DefaultDescription
		if fields.Description != nil {
			description = strings.TrimSpace(*fields.Description)
		}
		varieties := []string{}
		if fields.Varieties != nil {
			varieties = *fields.Varieties
		}
		active := true
		if fields.Active != nil {
			active = *fields.Active
		}

		now := time.Now()
		product := models.Product{
			ProductID:   productID,
			Name:        strings.TrimSpace(*fields.Name),
			Price:       *fields.Price,
			Category:    strings.TrimSpace(*fields.Category),
			ImageURL:    imageURL,
			Description: description,
			Varieties:   varieties,
			IsLiquid:    isLiquid,
			Unit:        unit,
			Active:      active,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if _, err := products.InsertOne(ctx, product); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				respondWithError(c, http.StatusConflict, route, "product id already exists")
				return
			}
			log.Println("CreateProduct insert error:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] created %s", route, product.ProductID)
		c.JSON(http.StatusCreated, product)
	}
}

func UpdateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/products/:id"
		defer handlePanic(c, route)

		productID, err := models.NormalizeProductID(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var payload models.ProductPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}
		fields := payload.StorageFields()

		updateSet := bson.M{}
		if fields.Name != nil {
			name := strings.TrimSpace(*fields.Name)
			if name == "" {
				respondWithError(c, http.StatusBadRequest, route, "name is required")
				return
			}
			updateSet["name"] = name
		}
		if fields.Price != nil {
			if *fields.Price < 0 {
				respondWithError(c, http.StatusBadRequest, route, "price must be >= 0")
				return
			}
			updateSet["price"] = *fields.Price
		}
		if fields.Category != nil {
			category := strings.TrimSpace(*fields.Category)
			if category == "" {
				respondWithError(c, http.StatusBadRequest, route, "category is required")
				return
			}
			updateSet["category"] = category
		}
		if fields.ImageURL != nil {
			updateSet["imageUrl"] = strings.TrimSpace(*fields.ImageURL)
		}
		if fields.Description != nil {
			updateSet["description"] = strings.TrimSpace(*fields.Description)
		}
		if fields.Varieties != nil {
			updateSet["varieties"] = *fields.Varieties
		}
		if fields.Active != nil {
			updateSet["active"] = *fields.Active
		}

		if len(updateSet) == 0 && fields.IsLiquid == nil && fields.Unit == nil {
			respondWithError(c, http.StatusBadRequest, route, "no fields to update")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var existing models.Product
		err = db.Collection("products").FindOne(ctx, bson.M{"productId": productID}).Decode(&existing)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		// The identifier is immutable after creation; payload id fields are
		// ignored here. The liquid/unit pair is re-normalized on every write.
		isLiquid, unit := models.ResolveLiquidUnit(fields.IsLiquid, fields.Unit, existing.IsLiquid)
		updateSet["isLiquid"] = isLiquid
		updateSet["unit"] = unit
		updateSet["updatedAt"] = time.Now()

		result, err := db.Collection("products").UpdateOne(
			ctx,
			bson.M{"productId": productID},
			bson.M{"$set": updateSet},
		)
		if err != nil {
			log.Println("UpdateProduct update error:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.MatchedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		var updated models.Product
		if err := db.Collection("products").FindOne(ctx, bson.M{"productId": productID}).Decode(&updated); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

// DeleteProduct soft-deactivates by default so the record stays visible to
// admins; ?hard=true removes the document entirely.
func DeleteProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/products/:id"
		defer handlePanic(c, route)

		productID, err := models.NormalizeProductID(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		hard := false
		if raw := strings.TrimSpace(c.Query("hard")); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "hard must be boolean")
				return
			}
			hard = parsed
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if hard {
			result, err := db.Collection("products").DeleteOne(ctx, bson.M{"productId": productID})
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
			if result.DeletedCount == 0 {
				respondWithError(c, http.StatusNotFound, route, "product not found")
				return
			}
			c.Status(http.StatusNoContent)
			return
		}

		result, err := db.Collection("products").UpdateOne(
			ctx,
			bson.M{"productId": productID},
			bson.M{"$set": bson.M{"active": false, "updatedAt": time.Now()}},
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.MatchedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		c.Status(http.StatusNoContent)
	}
}
