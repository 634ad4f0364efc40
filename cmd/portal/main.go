package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redtestlab/portal/internal/pkg/config"
	"github.com/redtestlab/portal/internal/pkg/database"
	"github.com/redtestlab/portal/internal/pkg/health"
	httpclient "github.com/redtestlab/portal/internal/pkg/http"
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/internal/pkg/middleware"
	"github.com/redtestlab/portal/internal/pkg/models"
	natspkg "github.com/redtestlab/portal/internal/pkg/nats"
	"github.com/redtestlab/portal/internal/pkg/server"
	authGateway "github.com/redtestlab/portal/services/auth/gateway"
	authHandler "github.com/redtestlab/portal/services/auth/handler"
	authRepository "github.com/redtestlab/portal/services/auth/repository"
	authUsecase "github.com/redtestlab/portal/services/auth/usecase"
	catalogGateway "github.com/redtestlab/portal/services/catalog/gateway"
	catalogHandler "github.com/redtestlab/portal/services/catalog/handler"
	catalogUsecase "github.com/redtestlab/portal/services/catalog/usecase"
	collectionGateway "github.com/redtestlab/portal/services/collection/gateway"
	collectionHandler "github.com/redtestlab/portal/services/collection/handler"
	collectionRepository "github.com/redtestlab/portal/services/collection/repository"
	collectionUsecase "github.com/redtestlab/portal/services/collection/usecase"
	customerGateway "github.com/redtestlab/portal/services/customer/gateway"
	customerHandler "github.com/redtestlab/portal/services/customer/handler"
	customerUsecase "github.com/redtestlab/portal/services/customer/usecase"
	mediaGateway "github.com/redtestlab/portal/services/media/gateway"
	mediaHandler "github.com/redtestlab/portal/services/media/handler"
	mediaUsecase "github.com/redtestlab/portal/services/media/usecase"
	providerGateway "github.com/redtestlab/portal/services/provider/gateway"
	providerHandler "github.com/redtestlab/portal/services/provider/handler"
	providerRepository "github.com/redtestlab/portal/services/provider/repository"
	providerUsecase "github.com/redtestlab/portal/services/provider/usecase"
	siteGateway "github.com/redtestlab/portal/services/site/gateway"
	siteHandler "github.com/redtestlab/portal/services/site/handler"
	siteUsecase "github.com/redtestlab/portal/services/site/usecase"
	"go.uber.org/zap"
)

const (
	loginRateLimit  = 10
	loginRatePeriod = time.Minute
)

func main() {
	appName := "portal-service"
	configPath := "config/portal.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
		zap.String("upstream", configs.Upstream.BaseURL),
	)

	if configs.JWT.Secret == "" {
		zapLogger.Fatal("JWT_SECRET must be set")
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize NATS
	natsProducer, err := natspkg.NewProducer(configs.NATS.URL, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}

	// Lab API client shared by every gateway
	labClient := httpclient.NewClient(httpclient.Config{
		BaseURL:        configs.Upstream.BaseURL,
		Timeout:        configs.Upstream.Timeout,
		MaxGetRetries:  configs.Upstream.MaxGetRetries,
		BreakerTimeout: configs.Upstream.BreakerTimeout,
	}, zapLogger)

	// Health checks
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddOptionalChecker("nats", health.NewNATSHealthChecker(natsProducer))
	healthService.AddOptionalChecker("lab-api", health.NewUpstreamHealthChecker(labClient))

	// Auth
	sessionRepo := authRepository.NewSessionRepository(redisClient)
	authUC := authUsecase.NewAuthUC(configs, sessionRepo, authGateway.NewAuthGW(labClient), zapLogger)

	// Collection
	collectionRepo := collectionRepository.NewCollectionRepository(configs, redisClient)
	collectionGW := collectionGateway.NewCollectionGW(labClient, natsProducer)
	collectionUC := collectionUsecase.NewCollectionUC(configs, collectionRepo, collectionGW, zapLogger)

	// Catalog, site and customer
	catalogUC := catalogUsecase.NewCatalogUC(catalogGateway.NewCatalogGW(labClient), zapLogger)
	siteUC := siteUsecase.NewSiteUC(siteGateway.NewSiteGW(labClient), zapLogger)
	customerUC := customerUsecase.NewCustomerUC(customerGateway.NewCustomerGW(labClient), zapLogger)

	// Provider
	providerRepo := providerRepository.NewProviderRepository(configs, redisClient)
	providerUC := providerUsecase.NewProviderUC(configs, providerRepo, providerGateway.NewProviderGW(labClient), zapLogger)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(echoMiddleware.RequestID())
	e.Use(middleware.RequestContextMiddleware())
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	authenticated := []echo.MiddlewareFunc{
		middleware.JWTAuth(configs.JWT),
		middleware.Session(sessionRepo, zapLogger),
	}
	loginLimiter := middleware.IPRateLimiter(loginRateLimit, loginRatePeriod, redisClient.GetClient(), zapLogger)

	public := e.Group("/public")
	admin := e.Group("/admin", append(authenticated, middleware.RequireRole(models.RoleAdmin))...)
	delivery := e.Group("/delivery", append(authenticated, middleware.RequireRole(models.RoleDelivery))...)
	customer := e.Group("/customer", append(authenticated, middleware.RequireRole(models.RoleUser))...)
	providerGroup := e.Group("/provider", append(authenticated, middleware.RequireRole(models.RoleService))...)

	// Register service routes
	authHandler.NewHandler(authUC).RegisterRoutes(e, loginLimiter, authenticated...)
	collectionHandler.NewHandler(collectionUC).RegisterRoutes(delivery)
	catalogHandler.NewHandler(catalogUC).RegisterRoutes(admin, public)
	siteHandler.NewHandler(siteUC).RegisterRoutes(admin, public)
	customerHandler.NewHandler(customerUC).RegisterRoutes(customer, public)
	providerHandler.NewHandler(providerUC).RegisterRoutes(providerGroup)

	mediaGW, err := mediaGateway.NewMediaGW(configs.Media, zapLogger)
	switch {
	case errors.Is(err, mediaGateway.ErrMediaDisabled):
		zapLogger.Warn("Media uploads disabled, asset host credentials are not configured")
	case err != nil:
		zapLogger.Fatal("Failed to initialize media gateway", zap.Error(err))
	default:
		mediaUC := mediaUsecase.NewMediaUC(configs, mediaGW, zapLogger)
		mediaHandler.NewHandler(mediaUC).RegisterRoutes(admin, providerGroup)
	}

	// Components are released in reverse order
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register("logger", func(context.Context) error {
		return zapLogger.Close()
	})
	shutdownManager.Register("redis", func(context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register("nats", func(context.Context) error {
		natsProducer.Stop()
		return nil
	})

	// Start server
	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := server.NewGracefulServer(e, zapLogger, configs.Server, shutdownManager).Start(context.Background()); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
