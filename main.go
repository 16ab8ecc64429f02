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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/xiaot623/farmchat/api"
	"github.com/xiaot623/farmchat/config"
	"github.com/xiaot623/farmchat/intent"
	"github.com/xiaot623/farmchat/llm"
	"github.com/xiaot623/farmchat/policy"
	"github.com/xiaot623/farmchat/service"
	"github.com/xiaot623/farmchat/store"
	"github.com/xiaot623/farmchat/weather"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting farmchat orchestrator...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Ollama URL: %s", cfg.OllamaURL)
	log.Printf("Ollama Model: %s", cfg.OllamaModel)

	// Initialize session store
	var sessions store.Store
	if cfg.DatabaseURL != "" {
		db, err := store.NewSQLiteStore(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize store: %v", err)
		}
		sessions = db
		log.Printf("Session store: sqlite (%s)", cfg.DatabaseURL)
	} else {
		sessions = store.NewMemoryStore(cfg.SessionMax, cfg.SessionTTL)
		log.Printf("Session store: memory (max=%d ttl=%s)", cfg.SessionMax, cfg.SessionTTL)
	}
	defer sessions.Close()

	// Initialize providers
	weatherClient := weather.NewClient(cfg.WeatherAPIURL, cfg.WeatherAPIKey, cfg.WeatherTimeout)
	llmClient := llm.NewClient(cfg.OllamaURL, cfg.OllamaModel, cfg.LLMTimeout, cfg.Temperature, cfg.TopK, cfg.TopP)

	// Initialize policy engine
	ctx := context.Background()
	policyContent := policy.DefaultPolicy
	if cfg.ProviderPolicyFile != "" {
		data, err := os.ReadFile(cfg.ProviderPolicyFile)
		if err != nil {
			log.Fatalf("Failed to read provider policy file: %v", err)
		}
		policyContent = string(data)
	}
	policyEngine, err := policy.NewEngine(ctx, policyContent)
	if err != nil {
		log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Initialize service
	svc := service.New(sessions, weatherClient, llmClient, intent.NewKeywordClassifier(), policyEngine)

	// Initialize handler
	h := api.NewHandler(svc)

	// Create Echo server
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Register routes
	h.RegisterRoutes(e)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down orchestrator...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Orchestrator stopped")
}
