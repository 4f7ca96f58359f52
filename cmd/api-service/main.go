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

	"golang-stock-briefing/internal/briefing/channel"
	"golang-stock-briefing/internal/briefing/config"
	delivery "golang-stock-briefing/internal/briefing/delivery/http"
	_ "golang-stock-briefing/internal/briefing/docs"
	"golang-stock-briefing/internal/briefing/renderer"
	"golang-stock-briefing/internal/briefing/repository"
	"golang-stock-briefing/internal/briefing/service"
	"golang-stock-briefing/pkg/logger"
	"golang-stock-briefing/pkg/mailer"
	"golang-stock-briefing/pkg/postgres"
	"golang-stock-briefing/pkg/redis"
	"golang-stock-briefing/pkg/slack"
	"golang-stock-briefing/pkg/telegram"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the briefing API service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Briefing API Service", logger.Field("name", cfg.App.Name))

	// Initialize run snapshot store
	var runRepo repository.RunRepository
	switch cfg.Storage.Driver {
	case "postgres":
		postgresCfg := postgres.Config{
			Host:            cfg.Database.Host,
			Port:            cfg.Database.Port,
			User:            cfg.Database.User,
			Password:        cfg.Database.Password,
			DBName:          cfg.Database.DBName,
			SSLMode:         cfg.Database.SSLMode,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		}
		db, err := postgres.NewDB(postgresCfg)
		if err != nil {
			appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
		}
		if sqlDB, err := db.DB.DB(); err == nil {
			defer sqlDB.Close()
		}
		runRepo = repository.NewPostgresRunRepository(db.DB, appLogger)
	default:
		runRepo, err = repository.NewFileRunRepository(cfg.Storage.OutputDir, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize file run store", logger.ErrorField(err))
		}
	}

	// Initialize quote and news sources
	quoteRepo := repository.NewYahooScreenerRepository(cfg, appLogger)

	var newsRepo repository.NewsRepository
	if cfg.Exa.APIKey != "" {
		redisCfg := redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		}
		redisClient, err := redis.NewClient(redisCfg)
		if err != nil {
			appLogger.Warn("Failed to initialize Redis, news caching disabled", logger.ErrorField(err))
			newsRepo = repository.NewExaNewsRepository(cfg, appLogger, nil)
		} else {
			defer redisClient.Close()
			newsRepo = repository.NewExaNewsRepository(cfg, appLogger, redisClient.Client)
		}
	} else {
		newsRepo = repository.NewGoogleRSSNewsRepository(cfg, appLogger)
	}

	// Initialize AI provider
	var aiRepo repository.AIRepository
	if cfg.Gemini.APIKey != "" {
		genAiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey: cfg.Gemini.APIKey,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini AI client", logger.ErrorField(err))
		}
		aiRepo, err = repository.NewGeminiAIRepository(cfg, appLogger, genAiClient)
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini AI repository", logger.ErrorField(err))
		}
	} else {
		appLogger.Warn("Gemini API key not configured, briefings will use fallback commentary")
	}

	// Initialize artifact renderer
	var docRenderer renderer.Renderer
	switch cfg.Briefing.Renderer {
	case "excel":
		excelRenderer, err := renderer.NewExcelRenderer(cfg.Storage.OutputDir, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize renderer", logger.ErrorField(err))
		}
		docRenderer = excelRenderer
	case "none":
	default:
		cardRenderer, err := renderer.NewCardRenderer(cfg.Storage.OutputDir, cfg.Briefing.FontPath, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize renderer", logger.ErrorField(err))
		}
		docRenderer = cardRenderer
	}

	// Initialize delivery channels
	var senders []channel.Sender
	if cfg.Channels.Email.SMTPHost != "" {
		emailSender := channel.NewEmailSender(mailer.New(mailer.Config{
			Host:     cfg.Channels.Email.SMTPHost,
			Port:     cfg.Channels.Email.SMTPPort,
			Username: cfg.Channels.Email.Username,
			Password: cfg.Channels.Email.Password,
			From:     cfg.Channels.Email.From,
		}))
		senders = append(senders, emailSender)
	}
	senders = append(senders, channel.NewChatSender(slack.NewWebhookClient()))
	if cfg.Channels.Telegram.BotToken != "" {
		telegramNotifier, err := telegram.NewClient(cfg.Channels.Telegram.BotToken, cfg.Channels.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
		senders = append(senders, channel.NewTelegramSender(telegramNotifier))
	}

	// Initialize services
	selector := service.NewSelector(quoteRepo, appLogger)
	enricher := service.NewEnricher(newsRepo, aiRepo, appLogger)
	composer := service.NewComposer(docRenderer, appLogger)
	dispatcher := service.NewDispatcher(appLogger, senders...)
	workflow := service.NewWorkflow(selector, enricher, composer, dispatcher, runRepo, appLogger)
	briefingSvc := service.NewBriefingService(workflow, dispatcher, runRepo, quoteRepo, newsRepo, cfg, appLogger)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Initialize handlers and routes
	briefingHandler := delivery.NewBriefingHandler(briefingSvc, appLogger)
	stockHandler := delivery.NewStockHandler(briefingSvc, appLogger)
	apiV1 := e.Group("/api/v1")
	briefingHandler.RegisterRoutes(apiV1.Group("/briefings"))
	stockHandler.RegisterRoutes(apiV1.Group("/stocks"))

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Stock Briefing API
// @version 1.0
// @description Daily trending stock briefing generator.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "api-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-api.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing api-service CLI: %s\n", err)
		os.Exit(1)
	}
}
