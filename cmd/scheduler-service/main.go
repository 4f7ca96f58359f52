package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang-stock-briefing/internal/briefing/channel"
	"golang-stock-briefing/internal/briefing/config"
	"golang-stock-briefing/internal/briefing/renderer"
	"golang-stock-briefing/internal/briefing/repository"
	"golang-stock-briefing/internal/briefing/service"
	"golang-stock-briefing/pkg/logger"
	"golang-stock-briefing/pkg/mailer"
	"golang-stock-briefing/pkg/postgres"
	"golang-stock-briefing/pkg/redis"
	"golang-stock-briefing/pkg/slack"
	"golang-stock-briefing/pkg/telegram"

	"github.com/spf13/cobra"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the briefing scheduler",
	Run:   runServe,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Runs one briefing pipeline pass and exits",
	Run:   runOnce,
}

type components struct {
	schedulerSvc service.SchedulerService
	cleanup      []func()
}

func (c *components) close() {
	for i := len(c.cleanup) - 1; i >= 0; i-- {
		c.cleanup[i]()
	}
}

func build(cfg *config.Config, appLogger *logger.Logger) *components {
	comp := &components{}

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
			comp.cleanup = append(comp.cleanup, func() { _ = sqlDB.Close() })
		}
		runRepo = repository.NewPostgresRunRepository(db.DB, appLogger)
	default:
		fileRepo, err := repository.NewFileRunRepository(cfg.Storage.OutputDir, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize file run store", logger.ErrorField(err))
		}
		runRepo = fileRepo
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
			comp.cleanup = append(comp.cleanup, func() { _ = redisClient.Close() })
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
		senders = append(senders, channel.NewEmailSender(mailer.New(mailer.Config{
			Host:     cfg.Channels.Email.SMTPHost,
			Port:     cfg.Channels.Email.SMTPPort,
			Username: cfg.Channels.Email.Username,
			Password: cfg.Channels.Email.Password,
			From:     cfg.Channels.Email.From,
		})))
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
	comp.schedulerSvc = service.NewSchedulerService(workflow, cfg, appLogger)
	return comp
}

func setup() (*config.Config, *logger.Logger) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return cfg, appLogger
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger := setup()
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Briefing Scheduler", logger.Field("name", cfg.App.Name))

	comp := build(cfg, appLogger)
	defer comp.close()

	if err := comp.schedulerSvc.Start(ctx); err != nil {
		appLogger.Fatal("Scheduler failed", logger.ErrorField(err))
	}

	appLogger.Info("Scheduler exiting")
}

func runOnce(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger := setup()
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Running one briefing pipeline pass", logger.Field("name", cfg.App.Name))

	comp := build(cfg, appLogger)
	defer comp.close()

	run := comp.schedulerSvc.RunOnce(ctx)
	appLogger.Info("Briefing run finished",
		logger.StringField("run_id", run.ID),
		logger.StringField("status", string(run.Status())),
	)
	if !run.Success {
		os.Exit(1)
	}
}

func main() {
	rootCmd := &cobra.Command{Use: "scheduler-service"}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-scheduler.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd, runCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing scheduler-service CLI: %s\n", err)
		os.Exit(1)
	}
}
