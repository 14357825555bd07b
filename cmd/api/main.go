package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/assistant"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/catalog"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/info"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/llm"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/order"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/pricing"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/router"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/storage"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"GEMINI_API_KEY",
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("missing env var: %s", k)
		}
	}

	tables := pricing.DefaultTables()
	if err := tables.Validate(); err != nil {
		log.Fatal(err)
	}

	var uploader storage.Uploader = storage.SimulatedUploader{}
	if storage.R2Configured() {
		r2, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("R2 init failed:", err)
		}
		uploader = r2
		log.Println("proof uploads go to R2")
	} else {
		log.Println("R2 not configured, proof uploads are simulated")
	}

	sessions := order.NewSessionRepository(tables, pricing.VATRate)
	assistantService := assistant.NewService(llm.NewGeminiClient(), sessions)

	orderHandler := order.NewHandler(sessions, uploader)
	assistantHandler := assistant.NewHandler(assistantService)
	orderHandler.OnReset(assistantService.Forget)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.New(r, router.Handlers{
		Catalog:   catalog.NewHandler(),
		Pricing:   pricing.NewHandler(tables, pricing.VATRate),
		Order:     orderHandler,
		Assistant: assistantHandler,
		Info:      info.NewHandler(),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
