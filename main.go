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

	"github.com/ievamoo/get2gether/actions"
	"github.com/ievamoo/get2gether/cascade"
	"github.com/ievamoo/get2gether/config"
	"github.com/ievamoo/get2gether/controllers"
	"github.com/ievamoo/get2gether/database"
	"github.com/ievamoo/get2gether/docs"
	"github.com/ievamoo/get2gether/logger"
	"github.com/ievamoo/get2gether/repositories"
	"github.com/ievamoo/get2gether/routes"
	"github.com/ievamoo/get2gether/services"
	"github.com/ievamoo/get2gether/tracing"
	"github.com/ievamoo/get2gether/utils"
	"github.com/ievamoo/get2gether/websocket"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// @title           Get2Gether API
// @version         1.0
// @description     API Server for planning group events
// @host            localhost:8080
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	migrateOnly := pflag.Bool("migrate-only", false, "run database migrations and exit")
	pflag.Parse()

	// Load environment variables
	cfg, envLoaded, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Init(cfg.LogLevel, cfg.IsDevelopment()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	if !envLoaded {
		logger.Log.Info("No .env file found, using system environment variables")
	}

	shutdownTracing, err := tracing.Setup(context.Background(), cfg.Telemetry, "get2gether")
	if err != nil {
		logger.Log.Fatal("Failed to set up tracing", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Log.Warn("Tracing shutdown failed", zap.Error(err))
		}
	}()

	// Initialize database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("Failed to migrate database", zap.Error(err))
	}
	if *migrateOnly {
		logger.Log.Info("Migrations applied")
		return
	}

	store := repositories.NewGormStore(db)
	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	hub := websocket.NewHub(store, tokens, logger.Log.Named("websocket"))

	dispatcher := actions.NewDispatcher(logger.Log.Named("actions"))
	dispatcher.SubscribeGroup(cascade.NewGroupHandler(logger.Log.Named("cascade")))
	dispatcher.SubscribeEvent(cascade.NewEventHandler(logger.Log.Named("cascade")))

	runner := actions.NewRunner(store, hub, dispatcher)
	svc := services.New(store, runner, tokens, logger.Log.Named("services"))
	hub.SetInviteResponder(svc.Invites)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go hub.Run(ctx)

	// Set up Swagger info
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	httpLog := logger.Log.Named("http")
	router := routes.SetupRouter(cfg, controllers.New(svc, httpLog), hub, tokens, httpLog)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	logger.SLog.Infof("Server running on port %s", cfg.Port)
	logger.SLog.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Fatal("Failed to start server", zap.Error(err))
	}
}
