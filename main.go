package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/business-boost/api-go/config"
	"github.com/business-boost/api-go/routes"
	"github.com/business-boost/api-go/store"
	"github.com/business-boost/api-go/verification"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Open the embedded store holding the durable snapshot
	db, err := config.OpenStore()
	if err != nil {
		log.Fatal("Failed to open store: ", err)
	}
	defer db.Close()

	localStore := store.New(db, config.SeedPath())

	// Select the data source: remote Postgres when configured, with the
	// local store as offline cache, otherwise local-only.
	var dataStore store.DataStore = localStore
	if gormDB, err := config.ConnectDatabase(); err != nil {
		log.Fatal("Failed to connect database: ", err)
	} else if gormDB != nil {
		log.Println("Remote data source enabled")
		dataStore = store.NewRemoteStore(gormDB, localStore)
	}

	// First-run seeding; without data there is nothing to serve.
	if _, err := dataStore.Initialize(context.Background()); err != nil {
		log.Fatal("Failed to initialize data: ", err)
	}

	engine := verification.NewEngine()

	// Create a new Gin router
	r := gin.Default()

	// Add logging middleware
	r.Use(gin.LoggerWithWriter(os.Stdout))

	// Initialize routes
	routes.SetupRoutes(r, dataStore, engine)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}
