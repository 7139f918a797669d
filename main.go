package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"properties-api/controllers"
	"properties-api/domain"
	"properties-api/middleware"
	"properties-api/repositories"
	"properties-api/services"
	"properties-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	// A missing .env file is fine; the environment itself wins either way.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "3306")
	dbUser := getEnv("DB_USER", "properties_user")
	dbPassword := getEnv("DB_PASSWORD", "properties_password")
	dbName := getEnv("DB_NAME", "properties_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbUser, dbPassword, dbHost, dbPort, dbName)

	log.Printf("Connecting to MySQL at %s:%s/%s", dbHost, dbPort, dbName)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.Property{}); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	userRepo := repositories.NewUserRepository(db)
	userService := services.NewUserService(userRepo)
	userController := controllers.NewUserController(userService)

	propertyRepo := repositories.NewPropertyRepository(db)
	propertyService := services.NewPropertyService(propertyRepo)
	propertyController := controllers.NewPropertyController(propertyService)

	// Without at least one admin account the write routes are unreachable
	// on a fresh database, so seed one from the environment when asked.
	seedAdmin(userRepo)

	router := gin.Default()

	// Permissive CORS so a browser frontend can talk to the API directly.
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/health", userController.HealthCheck)
	router.POST("/users", userController.Register)
	router.POST("/users/login", userController.Login)
	router.GET("/users/:id", userController.GetByID)

	// Reads are public; writes require an admin token.
	properties := router.Group("/properties")
	properties.GET("", propertyController.List)
	properties.GET("/:id", propertyController.GetByID)

	admin := properties.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("", propertyController.Create)
		admin.PUT("/:id", propertyController.Update)
		admin.DELETE("/:id", propertyController.Delete)
	}

	port := getEnv("SERVER_PORT", "8080")
	log.Printf("Properties API listening on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

// seedAdmin creates the bootstrap admin account if ADMIN_USERNAME and
// ADMIN_PASSWORD are set and no such account exists yet.
func seedAdmin(repo repositories.UserRepository) {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return
	}

	existing, err := repo.GetByUsername(username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		log.Printf("Failed to look up admin account: %v", err)
		return
	}
	if existing != nil {
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := &domain.User{
		Username: username,
		Password: hash,
		Role:     domain.RoleAdmin,
	}
	if err := repo.Create(admin); err != nil {
		log.Printf("Failed to seed admin account: %v", err)
		return
	}
	log.Printf("Seeded admin account %q", username)
}

// getEnv returns the environment value for key, or def when unset.
func getEnv(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	return value
}
