package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prudhvinik1/accountsvc/internal/config"
	"github.com/prudhvinik1/accountsvc/internal/database"
	"github.com/prudhvinik1/accountsvc/internal/handlers"
	"github.com/prudhvinik1/accountsvc/internal/repositories"
	"github.com/prudhvinik1/accountsvc/internal/services"

	mw "github.com/prudhvinik1/accountsvc/internal/middleware"
)

func main() {
	ctx := context.Background()

	godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database connection
	postgresPool, err := database.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create postgres pool: %v", err)
	}
	defer postgresPool.Close()

	if err := database.EnsureSchema(ctx, postgresPool); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	accountRepo := repositories.NewPostgresAccountRepository(postgresPool)
	accountService := services.NewAccountService(accountRepo)
	accountHandler := handlers.NewAccountHandler(accountService)

	// Initialize HTTP Server
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(mw.RequestID)
	router.Use(mw.SecureHeaders)
	if cfg.ForceHTTPS {
		router.Use(mw.ForceHTTPS)
	}

	// Rate limiting needs Redis; both are optional
	if cfg.RedisURL != "" && cfg.RateLimitRPS > 0 {
		redisClient, err := database.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to create redis client: %v", err)
		}
		defer redisClient.Close()

		limiter := mw.NewRateLimiter(redisClient, cfg.RateLimitRPS, time.Second)
		router.Use(limiter.Handler)
	}

	accountHandler.Register(router)

	// Start Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: router,
	}

	// graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server stopped gracefully")
}
