package routes

import (
	"context"
	"log"

	"gemstore/internal/adapter/http/handlers"
	"gemstore/internal/adapter/persistence/repository"
	"gemstore/internal/domain/discount"
	"gemstore/internal/domain/money"
	"gemstore/internal/infrastructure/config"
	"gemstore/internal/infrastructure/clock"
	"gemstore/internal/usecase"
	"gemstore/pkg"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run will start the server
func Run() {
	cfg := config.Load()

	logger, err := pkg.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	store, err := openStore(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("failed to open store", zap.String("backend", string(cfg.Backend)), zap.Error(err))
	}
	logger.Info("store ready", zap.String("backend", string(cfg.Backend)), zap.String("profile", cfg.Profile))

	router := NewRouter(cfg, store, logger)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to startup the application", zap.Error(err))
	}
}

// NewRouter wires every usecase over the given store and mounts the /v1 API.
func NewRouter(cfg config.Config, store Store, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router.Group("/v1"), cfg, store, logger)
	return router
}

func getRoutes(v1 *gin.RouterGroup, cfg config.Config, store Store, logger *zap.Logger) {
	snapshots := repository.NewSnapshotStore(store, cfg.Profile, logger)

	cartRepo := repository.NewCartRepository(snapshots)
	couponSlot := repository.NewAppliedCouponRepository(snapshots)
	orderRepo := repository.NewOrderRepository(snapshots)
	productRepo := repository.NewProductRepository(snapshots)
	siteConfigRepo := repository.NewSiteConfigRepository(snapshots)

	formatter := money.NewFormatter(cfg.CurrencyLocale)
	systemClock := clock.SystemClock{}
	ids := clock.UUIDGenerator{}

	productUseCase := usecase.NewProductUseCase(productRepo, systemClock, ids, logger)
	siteConfigUseCase := usecase.NewSiteConfigUseCase(siteConfigRepo, logger)
	cartUseCase := usecase.NewCartUseCase(cartRepo, productRepo, logger)
	couponUseCase := usecase.NewCouponUseCase(cartRepo, couponSlot, discount.DefaultCatalog(), discount.NewEvaluator(formatter), systemClock, logger)
	checkoutUseCase := usecase.NewCheckoutUseCase(cartRepo, couponUseCase, orderRepo, productRepo, siteConfigRepo, systemClock, ids, logger)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, systemClock, logger)

	addPingRoutes(v1)
	addStoreRoutes(v1, storeHandlers{
		products:   handlers.NewProductHandler(productUseCase, formatter),
		cart:       handlers.NewCartHandler(cartUseCase, formatter),
		coupons:    handlers.NewCouponHandler(couponUseCase),
		checkout:   handlers.NewCheckoutHandler(checkoutUseCase, formatter),
		orders:     handlers.NewOrderHandler(orderUseCase, formatter),
		siteConfig: handlers.NewSiteConfigHandler(siteConfigUseCase),
		events:     handlers.NewEventsHandler(store, logger),
	})
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	}))
}
