package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/recruit-backend/docs"
	"github.com/rafabene/recruit-backend/internal/domain/ports"
	"github.com/rafabene/recruit-backend/internal/handlers/dto"
	httphandlers "github.com/rafabene/recruit-backend/internal/handlers/http"
	"github.com/rafabene/recruit-backend/internal/handlers/middleware"
	"github.com/rafabene/recruit-backend/internal/infrastructure/billing"
	"github.com/rafabene/recruit-backend/internal/infrastructure/config"
	"github.com/rafabene/recruit-backend/internal/infrastructure/i18n"
	"github.com/rafabene/recruit-backend/internal/infrastructure/identity"
	"github.com/rafabene/recruit-backend/internal/infrastructure/logging"
	"github.com/rafabene/recruit-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/recruit-backend/internal/infrastructure/storage"
	"github.com/rafabene/recruit-backend/internal/services"
)

// @title Recruit API
// @version 1.0
// @description Perfis de atletas, técnicos e programas universitários.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting recruit backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Sentry é opcional fora de produção
	if cfg.Sentry.DSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			Environment:      cfg.Env,
			EnableTracing:    cfg.Sentry.TracesSampleRate > 0,
			TracesSampleRate: cfg.Sentry.TracesSampleRate,
		})
		if err != nil {
			logger.Error("failed to initialize sentry", "error", err)
			log.Fatal(err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	fatal := fatalHandler(logger, sentry.Flush, log.Fatal)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		fatal("failed to connect to database", err)
	}

	if cfg.Database.RunMigrations {
		if err := postgres.RunMigrations(db, logger); err != nil {
			fatal("failed to run migrations", err)
		}
	}

	// Inicializar i18n
	i18nService, err := i18n.NewEmbeddedService("en")
	if err != nil {
		fatal("failed to initialize i18n", err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	if err := dto.RegisterValidators(); err != nil {
		fatal("failed to register validators", err)
	}

	// Provedores externos
	jwtVerifier, err := identity.NewJWTVerifier(cfg.Identity)
	if err != nil {
		fatal("failed to initialize identity verifier", err)
	}

	webhookVerifier, err := identity.NewSvixWebhookVerifier(cfg.Identity.WebhookSecret)
	if err != nil {
		fatal("failed to initialize webhook verifier", err)
	}

	s3Client, err := storage.NewS3Client(context.Background(), cfg.Storage)
	if err != nil {
		fatal("failed to initialize storage client", err)
	}
	blobStorage := storage.NewS3Storage(s3Client, cfg.Storage.Bucket, cfg.Storage.PublicBaseURL)
	billingProvider := billing.NewStripeProvider(cfg.Billing)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	playerRepo := postgres.NewPlayerRepository(db)
	coachRepo := postgres.NewCoachRepository(db)
	savedRepo := postgres.NewSavedPlayerRepository(db)
	noteRepo := postgres.NewNoteRepository(db)
	programRepo := postgres.NewProgramRepository(db)
	tournamentRepo := postgres.NewTournamentRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	userService := services.NewUserService(userRepo, playerRepo, coachRepo, logger)
	guard := services.NewAuthGuard(userService, playerRepo, coachRepo)
	billingService := services.NewBillingService(userRepo, billingProvider, cfg.Server.AppURL, logger)
	playerService := services.NewPlayerService(playerRepo, billingService, blobStorage, logger)
	coachService := services.NewCoachService(coachRepo, programRepo, playerRepo, savedRepo, blobStorage, logger)
	noteService := services.NewNoteService(noteRepo, playerRepo, logger)
	programService := services.NewProgramService(programRepo, coachRepo, logger)
	tournamentService := services.NewTournamentService(tournamentRepo, logger)
	accountService := services.NewAccountService(uow, userRepo, playerRepo, coachRepo, savedRepo, noteRepo, blobStorage, logger)
	identityWebhooks := services.NewIdentityWebhookService(webhookVerifier, userService, accountService, logger)

	// Inicializar handlers
	handlers := httphandlers.Handlers{
		Me:       httphandlers.NewMeHandler(guard, logger),
		Players:  httphandlers.NewPlayerHandler(guard, playerService, logger),
		Coaches:  httphandlers.NewCoachHandler(guard, coachService, logger),
		Notes:    httphandlers.NewNoteHandler(guard, noteService, logger),
		Catalog:  httphandlers.NewCatalogHandler(guard, programService, tournamentService, logger),
		Billing:  httphandlers.NewBillingHandler(guard, billingService, logger),
		Webhooks: httphandlers.NewWebhookHandler(identityWebhooks, billingService, logger),
	}

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), httphandlers.Recovery(logger))

	if cfg.Sentry.DSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set(dto.BaseURLContextKey, cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Identidade da sessão; os guards decidem o acesso em cada rota
	identityMiddleware := middleware.NewIdentityMiddleware(jwtVerifier, logger)
	router.Use(identityMiddleware.Resolve())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	if !cfg.IsProduction() {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// API routes
	httphandlers.RegisterRoutes(router.Group("/api/v1"), handlers)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("server failed", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("server exited")
}

// fatalHandler registra o erro e envia os eventos pendentes do Sentry antes de encerrar,
// já que exit não executa os defers de main
func fatalHandler(logger ports.Logger, flush func(time.Duration) bool, exit func(...any)) func(string, error) {
	return func(msg string, err error) {
		logger.Error(msg, "error", err)
		sentry.CaptureException(err)
		flush(2 * time.Second)
		exit(err)
	}
}
