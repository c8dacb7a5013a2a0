// Command seed wipes the products collection and loads the starter catalog,
// deriving product ids the same way the service does.
package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"grocermart/internal/config"
	"grocermart/internal/database"
	"grocermart/internal/models"
)

type seedProduct struct {
	Name      string
	Price     float64
	Category  string
	ImageURL  string
	IsLiquid  bool
	Varieties []string
}

var initialProducts = []seedProduct{
	{Name: "Sona Masoori", Price: 60, Category: "Rice", ImageURL: "sona.jpg", Varieties: []string{"Raw", "Steam", "Parboiled"}},
	{Name: "Ponni Rice", Price: 55, Category: "Rice", ImageURL: "ponni.jpg", Varieties: []string{"Raw", "Steamed"}},
	{Name: "Basmati", Price: 170, Category: "Rice", ImageURL: "basmati.jpg", Varieties: []string{"Standard", "Aged"}},
	{Name: "Toor Dal", Price: 140, Category: "Dals", ImageURL: "toor.jpg"},
	{Name: "Turmeric Powder", Price: 300, Category: "Spices", ImageURL: "turmeric.jpg"},
	{Name: "Gingelly (Sesame) Oil", Price: 420, Category: "Oils", ImageURL: "gingelly.jpg", IsLiquid: true},
	{Name: "Coconut Oil", Price: 260, Category: "Oils", ImageURL: "coconut.jpg", IsLiquid: true},
	{Name: "Himalayan Pink Salt", Price: 40, Category: "Salts", ImageURL: "pink-salt.jpg"},
	{Name: "Wheat Flour (Atta)", Price: 35, Category: "Flours", ImageURL: "atta.jpg"},
	{Name: "Coffee Powder", Price: 450, Category: "Beverages", ImageURL: "coffee.jpg"},
}

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer client.Disconnect(ctx)

	db := client.Database(config.AppEnv.DBName)
	products := db.Collection("products")

	del, err := products.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatal("clear products:", err)
	}
	log.Printf("cleared %d products", del.DeletedCount)

	seen := map[string]bool{}
	exists := func(id string) (bool, error) { return seen[id], nil }

	now := time.Now()
	docs := make([]interface{}, 0, len(initialProducts))
	for _, p := range initialProducts {
		productID, err := models.DeriveProductID(p.Name, now, exists)
		if err != nil {
			log.Fatalf("derive id for %q: %v", p.Name, err)
		}
		seen[productID] = true

		varieties := p.Varieties
		if varieties == nil {
			varieties = []string{}
		}

		docs = append(docs, models.Product{
			ProductID:   productID,
			Name:        p.Name,
			Price:       p.Price,
			Category:    p.Category,
			ImageURL:    p.ImageURL,
			Description: models.DefaultDescription,
			Varieties:   varieties,
			IsLiquid:    p.IsLiquid,
			Unit:        models.UnitFor(p.IsLiquid),
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	res, err := products.InsertMany(ctx, docs)
	if err != nil {
		log.Fatal("insert products:", err)
	}
	log.Printf("inserted %d products", len(res.InsertedIDs))

	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
}
