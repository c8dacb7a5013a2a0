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
	"golang.org/x/crypto/bcrypt"

	"grocermart/internal/models"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type cartRequest struct {
	Cart []models.CartItem `json:"cart"`
}

// Register creates a buyer account with an empty cart. Emails are stored
// lowercased; a second registration differing only by case is rejected.
func Register(db *mongo.Database, jwtSecret string, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /users/register"
		defer handlePanic(c, route)

		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		email := models.NormalizeEmail(req.Email)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		count, err := db.Collection("users").CountDocuments(ctx, bson.M{"email": email})
		if err != nil {
			log.Println("[ACCOUNT] [ERROR] register lookup failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if count > 0 {
			respondWithError(c, http.StatusConflict, route, "email already registered")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("[ACCOUNT] [ERROR] password hash failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "password hash failed")
			return
		}

		account := models.Account{
			Name:         strings.TrimSpace(req.Name),
			Email:        email,
			Phone:        strings.TrimSpace(req.Phone),
			Address:      strings.TrimSpace(req.Address),
			PasswordHash: string(hash),
			Cart:         []models.CartItem{},
			Date:         time.Now(),
		}

		res, err := db.Collection("users").InsertOne(ctx, account)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				respondWithError(c, http.StatusConflict, route, "email already registered")
				return
			}
			log.Println("[ACCOUNT] [ERROR] register insert failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		id, _ := res.InsertedID.(primitive.ObjectID)
		log.Println("[ACCOUNT] [INFO] registered:", email)
		c.JSON(http.StatusCreated, gin.H{
			"message": "registered",
			"user": gin.H{
				"id":    id.Hex(),
				"name":  account.Name,
				"email": account.Email,
			},
		})
	}
}

// Login verifies the credential against the stored bcrypt hash and returns
// the account including its persisted cart snapshot.
func Login(db *mongo.Database, jwtSecret string, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /users/login"
		defer handlePanic(c, route)

		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "email and password are required")
			return
		}

		email := models.NormalizeEmail(req.Email)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var account models.Account
		err := db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&account)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusUnauthorized, route, "invalid credentials")
			return
		}
		if err != nil {
			log.Println("[ACCOUNT] [ERROR] login lookup failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
			respondWithError(c, http.StatusUnauthorized, route, "invalid credentials")
			return
		}

		accessToken, err := issueUserToken(account.ID, account.Email, jwtSecret, accessTTL)
		if err != nil {
			log.Println("[ACCOUNT] [ERROR] token generation failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "token generation failed")
			return
		}

		if account.Cart == nil {
			account.Cart = []models.CartItem{}
		}

		log.Println("[ACCOUNT] [INFO] login succeeded:", account.Email)
		c.JSON(http.StatusOK, gin.H{
			"accessToken": accessToken,
			"user":        account,
		})
	}
}

// ReplaceCart overwrites the stored cart with the submitted list. There are
// no merge semantics; concurrent saves are last-write-wins.
func ReplaceCart(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /users/cart"
		defer handlePanic(c, route)

		userIDValue, ok := c.Get("userId")
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}
		userID := userIDValue.(primitive.ObjectID)

		var req cartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		cart := req.Cart
		if cart == nil {
			cart = []models.CartItem{}
		}
		for _, item := range cart {
			if strings.TrimSpace(item.ProductID) == "" {
				respondWithError(c, http.StatusBadRequest, route, "cart item productId is required")
				return
			}
			if item.Qty <= 0 {
				respondWithError(c, http.StatusBadRequest, route, "cart item qty must be greater than zero")
				return
			}
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("users").UpdateByID(ctx, userID, bson.M{
			"$set": bson.M{"cart": cart},
		})
		if err != nil {
			log.Println("[ACCOUNT] [ERROR] cart save failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.MatchedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "account not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

// clearCart empties an account's cart. Called as the side effect of a
// successful order placement.
func clearCart(ctx context.Context, db *mongo.Database, userID primitive.ObjectID) error {
	result, err := db.Collection("users").UpdateByID(ctx, userID, bson.M{
		"$set": bson.M{"cart": []models.CartItem{}},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ListAccounts returns all accounts without credential material.
func ListAccounts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /users"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		findOptions := options.Find().
			SetProjection(bson.M{"passwordHash": 0}).
			SetSort(bson.D{{Key: "date", Value: -1}})

		cursor, err := db.Collection("users").Find(ctx, bson.M{}, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		var accounts []models.Account
		if err := cursor.All(ctx, &accounts); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, accounts)
	}
}
