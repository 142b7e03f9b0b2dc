package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"time"

	config "tagalog-nlp-api/configs"
	"tagalog-nlp-api/pkg/game"
	"tagalog-nlp-api/pkg/handlers"
	"tagalog-nlp-api/pkg/nlp"
	"tagalog-nlp-api/pkg/services"
	"tagalog-nlp-api/pkg/tagset"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	cfg := config.LoadConfig()

	table, err := tagset.ByName(cfg.Tagset)
	if err != nil {
		log.Fatalf("Invalid POS_TAGSET: %v", err)
	}
	log.Printf("Using %s tagset (%d categories)", table.Name(), table.Size())

	// The model sidecar is optional; without it every request uses the
	// lexicon fallback.
	var primary nlp.Provider
	if cfg.ModelEndpoint != "" {
		remote := nlp.NewRemoteProvider(cfg.ModelEndpoint, cfg.ModelName, cfg.ModelTimeout)
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ModelTimeout)
		if err := remote.Ping(ctx); err != nil {
			log.Printf("Model service at %s not reachable, using fallback tagging: %v", cfg.ModelEndpoint, err)
		} else {
			log.Printf("Model service %s (%s) is healthy", cfg.ModelEndpoint, cfg.ModelName)
			primary = remote
		}
		cancel()
	}

	taggingService := services.NewTaggingService(primary, nlp.NewLexiconProvider())
	monitoringService := services.NewMonitoringService()
	conversationService := services.NewConversationService(taggingService, rand.NewSource(time.Now().UnixNano()))

	wordBank := game.NewWordBank(cfg.WordBankDir, rand.NewSource(time.Now().UnixNano()))
	generator := game.NewGenerator(table, rand.NewSource(time.Now().UnixNano()))

	gameHandler := handlers.NewGameHandler(taggingService, table, generator, wordBank, cfg.QuestionsPerRound)
	analyzeHandler := handlers.NewAnalyzeHandler(taggingService, table, cfg.ModelName)
	chatHandler := handlers.NewChatHandler(conversationService)
	adminHandler := handlers.NewAdminHandler(cfg, taggingService, wordBank)
	monitoringHandler := handlers.NewMonitoringHandler(monitoringService)

	r := gin.Default()
	r.Use(monitoringService.LoggingMiddleware())
	r.Use(cors.Default())

	// Admin key middleware; disabled when no key is configured.
	authMiddleware := func(apiKey string) gin.HandlerFunc {
		return func(c *gin.Context) {
			if apiKey == "" {
				c.Next()
				return
			}
			if c.GetHeader("X-API-KEY") != apiKey {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			c.Next()
		}
	}

	r.GET("/health", analyzeHandler.HealthCheck)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/pos-game", gameHandler.GetPOSGame)
		v1.POST("/custom-game", gameHandler.CustomGame)
		v1.POST("/analyze", analyzeHandler.Analyze)
		v1.POST("/verify", gameHandler.VerifyAnswer)

		makeSentence := v1.Group("/make-sentence")
		{
			makeSentence.GET("/words", gameHandler.GetSentenceWords)
			makeSentence.POST("/verify", gameHandler.VerifySentenceUsage)
		}

		conversation := v1.Group("/conversation")
		{
			conversation.POST("", chatHandler.Chat)
			conversation.GET("/summary", chatHandler.Summary)
			conversation.POST("/reset", chatHandler.Reset)
		}

		monitoring := v1.Group("/monitoring")
		{
			monitoring.GET("/logs", monitoringHandler.GetLogs)
		}

		admin := v1.Group("/admin")
		admin.Use(authMiddleware(cfg.AdminAPIKey))
		{
			admin.GET("/health-status", adminHandler.GetHealthStatus)
			admin.POST("/wordbank/import", adminHandler.ImportWordBank)
		}
	}

	log.Printf("Starting Tagalog NLP API server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
