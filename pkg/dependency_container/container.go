package dependency_container

import (
	"context"
	"fmt"

	"github.com/PolyglAI/PolyglAI/pkg/app/moderation"
	appTelemetry "github.com/PolyglAI/PolyglAI/pkg/app/telemetry"
	"github.com/PolyglAI/PolyglAI/pkg/app/translation"
	"github.com/PolyglAI/PolyglAI/pkg/common"
	"github.com/PolyglAI/PolyglAI/pkg/config"
	domainModeration "github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	domainTranslation "github.com/PolyglAI/PolyglAI/pkg/domain/translation"
	handlers "github.com/PolyglAI/PolyglAI/pkg/handlers/http"
	wsHandlers "github.com/PolyglAI/PolyglAI/pkg/handlers/websocket"
	"github.com/PolyglAI/PolyglAI/pkg/infra/auth/jwt"
	"github.com/PolyglAI/PolyglAI/pkg/infra/cache"
	"github.com/PolyglAI/PolyglAI/pkg/infra/database"
	"github.com/PolyglAI/PolyglAI/pkg/infra/httpx"
	providersFactory "github.com/PolyglAI/PolyglAI/pkg/infra/providers/factory"
	"github.com/PolyglAI/PolyglAI/pkg/infra/repository"
	infraTelemetry "github.com/PolyglAI/PolyglAI/pkg/infra/telemetry"
	"github.com/PolyglAI/PolyglAI/pkg/infra/telemetry/kafka"
	"github.com/PolyglAI/PolyglAI/pkg/infra/telemetry/webhook"
	infraWebsocket "github.com/PolyglAI/PolyglAI/pkg/infra/websocket"
	"github.com/PolyglAI/PolyglAI/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type Container struct {
	Cache               cache.Client
	JWTManager          jwt.Manager
	UsageRecordRepo     domainModeration.Repository
	Recorder            moderation.Recorder
	RetentionJanitor    *moderation.RetentionJanitor
	EventListener       cache.EventListener
	Hub                 *infraWebsocket.Hub
	StreamSemaphore     *infraWebsocket.Semaphore
	Translator          domainTranslation.Translator
	HandlerTransport    *handlers.HandlerTransport
	WSHandlerTransport  wsHandlers.HandlerTransport
	MiddlewareTransport *middleware.Transport
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	DB     *database.DB
	Cache  cache.Client
}

// NewContainer wires the console from configuration. The database and redis
// connections are opened by the caller so they can be closed in order.
func NewContainer(di ContainerDI) (*Container, error) {
	cfg := di.Cfg
	logger := di.Logger

	jwtManager, err := jwt.NewJwtManager(cfg.Server.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("admin auth: %w", err)
	}

	cacheClient := di.Cache
	cacheClient.CreateTTLMap(cache.UsageRecordTTLName, common.UsageRecordCacheTTL)
	redisClient := cacheClient.RedisClient()

	httpClient := httpx.NewFastHTTPClient(httpx.WithTimeout(cfg.Translation.Timeout))

	// telemetry
	exporterLocator := infraTelemetry.NewExporterLocator(
		infraTelemetry.WithExporter(kafka.NewKafkaExporter(logger)),
		infraTelemetry.WithExporter(webhook.NewWebhookExporter(httpClient)),
	)
	if err := appTelemetry.NewExportersValidator(exporterLocator).Validate(cfg.Telemetry.Exporters); err != nil {
		return nil, fmt.Errorf("invalid telemetry configuration: %w", err)
	}
	exporters, err := appTelemetry.NewExportersBuilder(exporterLocator).Build(cfg.Telemetry.Exporters)
	if err != nil {
		return nil, fmt.Errorf("failed to build telemetry exporters: %w", err)
	}

	// moderation
	usageRecordRepo := repository.NewUsageRecordRepository(di.DB.DB)
	violationCounter := cache.NewViolationTracker(redisClient, cfg.Moderation.ViolationCounterTTL)
	recorder := moderation.NewRecorder(logger, usageRecordRepo,
		moderation.WithViolationCounter(violationCounter),
		moderation.WithEventPublisher(cache.NewModerationEventPublisher(redisClient, cfg.Moderation.EventsChannel)),
		moderation.WithExporters(exporters...),
		moderation.WithQueueSize(cfg.Moderation.RecorderQueueSize),
		moderation.WithRecordTimeout(cfg.Moderation.RecordTimeout),
	)

	var dispatcher moderation.Dispatcher
	if cfg.Moderation.RecordViolations {
		dispatcher = recorder
	}
	validator := moderation.NewValidator(
		logger,
		moderation.MustNewClassifier(moderation.DefaultLexicon()),
		dispatcher,
		cfg.Moderation.MaxLength,
	)
	recordFinder := moderation.NewRecordFinder(usageRecordRepo, violationCounter, cacheClient, logger)
	highRiskFinder := moderation.NewHighRiskFinder(
		usageRecordRepo,
		logger,
		cfg.Moderation.HighRiskThreshold,
		cfg.Moderation.HighRiskWindow,
	)

	// translation
	backend, err := providersFactory.NewProviderLocator(httpClient).Translator(providersFactory.Config{
		Provider:    cfg.Translation.Provider,
		ApiKey:      cfg.Translation.ApiKey,
		BaseURL:     cfg.Translation.BaseURL,
		Model:       cfg.Translation.Model,
		MaxTokens:   cfg.Translation.MaxTokens,
		Temperature: cfg.Translation.Temperature,
		Azure:       cfg.Translation.Azure,
		AwsBedrock:  cfg.Translation.AwsBedrock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build translator: %w", err)
	}
	translator := translation.NewCachedTranslator(backend, cacheClient, logger, cfg.Translation.CacheTTL, cfg.Translation.Timeout)

	// admin stream
	hub := infraWebsocket.NewHub(logger, cfg.Stream.SubscriberBuffer)
	semaphore := infraWebsocket.NewSemaphore(cfg.Stream.MaxConnections)

	handlerTransport := &handlers.HandlerTransport{
		ValidateContentHandler:       handlers.NewValidateContentHandler(logger, validator, cfg.Moderation.RecordViolations),
		CreateTranslationHandler:     handlers.NewCreateTranslationHandler(logger, translation.NewSubmitter(logger, validator, translator)),
		CreateFileTranslationHandler: handlers.NewCreateFileTranslationHandler(logger, translation.NewFileSubmitter(logger, validator, translator)),
		DetectLanguageHandler:        handlers.NewDetectLanguageHandler(logger, translation.NewLanguageDetector(logger, validator, translator)),
		ListRecordsHandler:           handlers.NewListRecordsHandler(logger, recordFinder),
		GetRecordHandler:             handlers.NewGetRecordHandler(logger, recordFinder),
		ListHighRiskUsersHandler:     handlers.NewListHighRiskUsersHandler(logger, highRiskFinder),
		GetUserViolationsHandler:     handlers.NewGetUserViolationsHandler(logger, recordFinder),
		GetVersionHandler:            handlers.NewGetVersionHandler(),
		HealthHandler: handlers.NewHealthHandler(logger, map[string]handlers.HealthCheck{
			"database": di.DB.Ping,
			"redis": func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			},
		}),
	}

	wsHandlerTransport := &wsHandlers.HandlerTransportDTO{
		ModerationStreamHandler: wsHandlers.NewModerationStreamHandler(logger, hub, semaphore, wsHandlers.StreamConfig{
			PongWait:   cfg.Stream.PongWait,
			PingPeriod: cfg.Stream.PingPeriod,
		}),
	}

	middlewareTransport := &middleware.Transport{
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
		SecurityMiddleware: middleware.NewSecurityMiddleware(middleware.SecurityConfig{
			AllowOrigins: cfg.Server.AllowOrigins,
			MaxAge:       "600",
		}),
		MetricsMiddleware:   middleware.NewMetricsMiddleware(logger),
		ClientMiddleware:    middleware.NewClientMiddleware(),
		AdminAuthMiddleware: middleware.NewAdminAuthMiddleware(logger, jwtManager),
		StreamMiddleware:    middleware.NewStreamMiddleware(logger, semaphore),
	}

	return &Container{
		Cache:               cacheClient,
		JWTManager:          jwtManager,
		UsageRecordRepo:     usageRecordRepo,
		Recorder:            recorder,
		RetentionJanitor:    moderation.NewRetentionJanitor(usageRecordRepo, logger, cfg.Moderation.RetentionDays),
		EventListener:       cache.NewModerationEventListener(logger, cacheClient, cfg.Moderation.EventsChannel),
		Hub:                 hub,
		StreamSemaphore:     semaphore,
		Translator:          translator,
		HandlerTransport:    handlerTransport,
		WSHandlerTransport:  wsHandlerTransport,
		MiddlewareTransport: middlewareTransport,
	}, nil
}
