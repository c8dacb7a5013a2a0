package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"grocermart/internal/config"
	"grocermart/internal/database"
	"grocermart/internal/handlers"
	"grocermart/internal/middleware"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureAccountIndexes(db); err != nil {
		log.Printf("account index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/catalog", handlers.GetCatalog(db))

	r.POST("/admin/login", handlers.AdminLogin(
		config.AppEnv.AdminEmail,
		config.AppEnv.AdminPasswordHash,
		config.AppEnv.JWTSecret,
		config.AppEnv.AccessTokenTTL,
	))

	admin := r.Group("/")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.GET("/admin/products", handlers.GetAllProducts(db))
		admin.POST("/admin/products", handlers.CreateProduct(db))
		admin.POST("/admin/products/:id", handlers.UpdateProduct(db))
		admin.DELETE("/admin/products/:id", handlers.DeleteProduct(db))

		admin.GET("/users", handlers.ListAccounts(db))

		admin.GET("/orders", handlers.GetOrders(db))
		admin.PUT("/orders/:id/status", handlers.UpdateOrderStatus(db))

		admin.GET("/sellers", handlers.ListApplications(db))
		admin.DELETE("/sellers/:id", handlers.DeleteApplication(db))
	}

	r.POST("/users/register", handlers.Register(db, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))
	r.POST("/users/login", handlers.Login(db, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))

	user := r.Group("/")
	user.Use(middleware.UserAuth(config.AppEnv.JWTSecret))
	{
		user.POST("/users/cart", handlers.ReplaceCart(db))
		user.POST("/orders", handlers.CreateOrder(db))
	}

	r.POST("/sellers", handlers.SubmitApplication(db))

	r.Run(":" + config.AppEnv.Port)
}
