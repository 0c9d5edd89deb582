package main

import (
	"log"
	"os"
	"time"

	"restriction-app/config"
	"restriction-app/database"
	routes "restriction-app/internal/app/http"
	"restriction-app/internal/domain/roles"
	"restriction-app/internal/infra/cache"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	if config.REDIS_ADDR != "" {
		store, err := cache.New(config.REDIS_ADDR)
		if err != nil {
			log.Println("Redis unavailable, running without invalidation cache:", err)
		} else {
			cache.Default = store
		}
	}

	if config.ROLES_FILE != "" {
		catalog, err := roles.LoadFile(config.ROLES_FILE)
		if err != nil {
			log.Fatal("Failed to load roles file:", err)
		}
		roles.SetActive(catalog)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("CORS_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}
