package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PolyglAI/PolyglAI/pkg/config"
	"github.com/PolyglAI/PolyglAI/pkg/dependency_container"
	domainModeration "github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	"github.com/PolyglAI/PolyglAI/pkg/infra/auth/jwt"
	"github.com/PolyglAI/PolyglAI/pkg/infra/cache"
	"github.com/PolyglAI/PolyglAI/pkg/infra/database"
	infraLogger "github.com/PolyglAI/PolyglAI/pkg/infra/logger"
	"github.com/PolyglAI/PolyglAI/pkg/server"
	"github.com/PolyglAI/PolyglAI/pkg/server/router"
	"github.com/joho/godotenv"
)

//go:generate swag init --dir ../../ --generalInfo cmd/console/main.go --output ../../docs --outputTypes go

const defaultTokenTTL = 24 * time.Hour

// @title PolyglAI Console API
// @version 0.4.0
// @description Content validation, translation and moderation review API for the PolyglAI learner dashboard and admin console.
// @BasePath /
func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	switch getCommand() {
	case "token":
		if err := mintToken(cfg, os.Args[2:]); err != nil {
			log.Fatalf("failed to create admin token: %v", err)
		}
	case "serve":
		serve(cfg)
	default:
		log.Fatalf("unknown command %q, expected serve or token", getCommand())
	}
}

func getCommand() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return "serve"
}

// mintToken prints an admin token for the subject given as the first
// argument. An optional second argument overrides the default lifetime.
func mintToken(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: console token <subject> [ttl]")
	}
	ttl := defaultTokenTTL
	if len(args) > 1 {
		parsed, err := time.ParseDuration(args[1])
		if err != nil {
			return fmt.Errorf("invalid ttl %q: %w", args[1], err)
		}
		if parsed <= 0 {
			return fmt.Errorf("ttl must be positive, got %s", parsed)
		}
		ttl = parsed
	}
	manager, err := jwt.NewJwtManager(cfg.Server.SecretKey)
	if err != nil {
		return err
	}
	token, err := manager.CreateToken(args[0], ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func serve(cfg *config.Config) {
	logger, closeLogs, err := infraLogger.NewLogger(infraLogger.Config{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Console: cfg.Logging.Console,
	})
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer closeLogs()

	db, err := database.NewDB(logger, &database.Config{
		Host:         cfg.Database.Host,
		Port:         cfg.Database.Port,
		User:         cfg.Database.User,
		Password:     cfg.Database.Password,
		DBName:       cfg.Database.DBName,
		SSLMode:      cfg.Database.SSLMode,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	cacheClient, err := cache.NewClient(cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TLS:      cfg.Redis.TLS,
	}, logger)
	if err != nil {
		logger.Fatalf("failed to initialize cache: %v", err)
	}
	defer cacheClient.RedisClient().Close()

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
		DB:     db,
		Cache:  cacheClient,
	})
	if err != nil {
		logger.Fatalf("failed to initialize container: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	container.Recorder.Start(cfg.Moderation.RecorderWorkers)

	if container.RetentionJanitor.Enabled() {
		go container.RetentionJanitor.Run(ctx)
	}

	go func() {
		logger.WithField("channel", cfg.Moderation.EventsChannel).Info("listening for moderation events")
		container.EventListener.Listen(ctx, func(ctx context.Context, record *domainModeration.UsageRecord) {
			container.Hub.Broadcast(ctx, record)
		})
	}()

	srv := server.NewConsoleServer(server.ConsoleServerDI{
		Config: cfg,
		Logger: logger,
		Routers: []router.ServerRouter{
			router.NewConsoleRouter(
				container.MiddlewareTransport,
				container.HandlerTransport,
				container.WSHandlerTransport,
			),
		},
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	cancel()
	container.Hub.Close()
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
	}

	drainCtx, drainCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer drainCancel()
	if err := container.Recorder.Shutdown(drainCtx); err != nil {
		logger.WithError(err).Warn("usage recorder did not drain before shutdown")
	}
	logger.Info("server gracefully stopped")
}
