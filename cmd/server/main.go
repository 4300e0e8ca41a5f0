package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"idento/internal/api"
	"idento/internal/app/service"
	"idento/internal/app/session"
	"idento/internal/domain/repository"
	"idento/internal/platform/cache"
	"idento/internal/platform/config"
	"idento/internal/platform/database"
)

func main() {
	// 1. Load Configuration
	config.Load()
	log.Println("Configuration loaded.")

	// 2. Initialize Database
	database.Connect()
	defer database.Close()
	log.Println("Database connected.")

	ctx := context.Background()
	if err := repository.EnsureSchema(ctx, database.DB); err != nil {
		log.Fatalf("Schema bootstrap failed: %v", err)
	}

	// 3. Initialize Session Store
	var sessionStore session.Store
	switch config.AppConfig.SessionStore {
	case "memory":
		sessionStore = session.NewMemoryStore()
		log.Println("Using in-memory session store.")
	default:
		cache.ConnectRedis()
		defer cache.CloseRedis()
		sessionStore = session.NewRedisStore(cache.RDB)
		log.Println("Redis connected.")
	}
	sessions := session.NewManager(config.AppConfig.SessionKey, config.AppConfig.SessionTTL, sessionStore)

	// 4. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)

	// 5. Initialize Services
	accountService := service.NewAccountService(userRepo)
	chatService := service.NewChatService()

	// 6. Seed the bootstrap admin (idempotent)
	if err := accountService.SeedAdmin(ctx,
		config.AppConfig.SeedAdminEmail,
		config.AppConfig.SeedAdminName,
		config.AppConfig.SeedAdminPassword,
	); err != nil {
		log.Fatalf("Admin seed failed: %v", err)
	}

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(sessions, accountService, chatService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
