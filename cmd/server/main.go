package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/partserp/backend/internal/application/catalog"
	financeapp "github.com/partserp/backend/internal/application/finance"
	inventoryapp "github.com/partserp/backend/internal/application/inventory"
	partnerapp "github.com/partserp/backend/internal/application/partner"
	tradeapp "github.com/partserp/backend/internal/application/trade"
	"github.com/partserp/backend/internal/infrastructure/cache"
	"github.com/partserp/backend/internal/infrastructure/config"
	"github.com/partserp/backend/internal/infrastructure/event"
	"github.com/partserp/backend/internal/infrastructure/logger"
	"github.com/partserp/backend/internal/infrastructure/persistence"
	"github.com/partserp/backend/internal/infrastructure/storage"
	"github.com/partserp/backend/internal/infrastructure/telemetry"
	"github.com/partserp/backend/internal/interfaces/http/handler"
	"github.com/partserp/backend/internal/interfaces/http/middleware"
	"github.com/partserp/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is overridden at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Parts ERP Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	// Initialize telemetry providers (no-op providers when disabled)
	var (
		tracerProvider *telemetry.TracerProvider
		meterProvider  *telemetry.MeterProvider
	)
	if cfg.Telemetry.Enabled {
		tracerProvider, err = telemetry.NewTracerProvider(context.Background(), telemetry.Config{
			Enabled:           true,
			CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
			SamplingRatio:     cfg.Telemetry.SamplingRatio,
			ServiceName:       cfg.Telemetry.ServiceName,
			Insecure:          cfg.Telemetry.Insecure,
		}, log)
		if err != nil {
			log.Fatal("Failed to initialize tracer provider", zap.Error(err))
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
				log.Error("Error shutting down tracer provider", zap.Error(err))
			}
		}()

		meterProvider, err = telemetry.NewMeterProvider(context.Background(), telemetry.MetricsConfig{
			Enabled:           true,
			CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
			ServiceName:       cfg.Telemetry.ServiceName,
			Insecure:          cfg.Telemetry.Insecure,
		}, log)
		if err != nil {
			log.Fatal("Failed to initialize meter provider", zap.Error(err))
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := meterProvider.Shutdown(shutdownCtx); err != nil {
				log.Error("Error shutting down meter provider", zap.Error(err))
			}
		}()

		loggerProvider, err := telemetry.NewLoggerProvider(context.Background(), telemetry.LogsConfig{
			Enabled:           true,
			CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
			ServiceName:       cfg.Telemetry.ServiceName,
			Insecure:          cfg.Telemetry.Insecure,
		}, log)
		if err != nil {
			log.Fatal("Failed to initialize logger provider", zap.Error(err))
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := loggerProvider.Shutdown(shutdownCtx); err != nil {
				log.Error("Error shutting down logger provider", zap.Error(err))
			}
		}()

		// Bridge zap output to the OTEL collector in addition to stdout
		otelCore := telemetry.NewZapOTELCore(telemetry.ZapBridgeConfig{
			ServiceName:    cfg.Telemetry.ServiceName,
			LoggerProvider: loggerProvider,
			Level:          zapcore.InfoLevel,
		})
		log = telemetry.NewBridgedLogger(log.Core(), otelCore)

		log.Info("Telemetry enabled",
			zap.String("collector", cfg.Telemetry.CollectorEndpoint),
			zap.Float64("sampling_ratio", cfg.Telemetry.SamplingRatio),
		)
	}

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Register database observability plugins
	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		tracingCfg := telemetry.DefaultDBTracingConfig()
		tracingCfg.Enabled = true
		tracingCfg.SlowQueryThresh = cfg.Telemetry.DBSlowQueryThresh
		if err := telemetry.NewDBTracingPlugin(tracingCfg, log).RegisterOtelGorm(db.DB); err != nil {
			log.Warn("Failed to register DB tracing plugin", zap.Error(err))
		}
	}
	if meterProvider != nil && meterProvider.IsEnabled() {
		metricsCfg := telemetry.DefaultDBMetricsConfig()
		metricsCfg.SlowQueryThreshold = cfg.Telemetry.DBSlowQueryThresh
		dbMetrics, err := telemetry.NewDBMetrics(meterProvider.Meter("partserp/db"), metricsCfg, log)
		if err != nil {
			log.Warn("Failed to create DB metrics", zap.Error(err))
		} else if err := db.DB.Use(telemetry.NewDBMetricsPlugin(dbMetrics, log)); err != nil {
			log.Warn("Failed to register DB metrics plugin", zap.Error(err))
		}
	}

	// Initialize repositories
	itemRepo := persistence.NewGormItemRepository(db.DB)
	warehouseRepo := persistence.NewGormWarehouseRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	vendorRepo := persistence.NewGormVendorRepository(db.DB)
	stockLedgerRepo := persistence.NewGormStockLedgerRepository(db.DB)
	stockAlertRepo := persistence.NewGormStockAlertRepository(db.DB)
	salesOrderRepo := persistence.NewGormSalesOrderRepository(db.DB)
	purchaseOrderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	ledgerEntryRepo := persistence.NewGormLedgerEntryRepository(db.DB)
	profitLossRepo := persistence.NewGormProfitLossRepository(db.DB)

	// Transaction scopes bind each context's aggregates into a single
	// database transaction with row-level locking
	tradeScope := persistence.NewGormTradeTransactionScope(db.DB, cfg.Database.LockTimeout)
	inventoryScope := persistence.NewGormInventoryTransactionScope(db.DB, cfg.Database.LockTimeout)
	financeScope := persistence.NewGormFinanceTransactionScope(db.DB, cfg.Database.LockTimeout)

	// Initialize object storage for item images
	var objectStorage catalogapp.ObjectStorageService
	if cfg.Storage.Provider == "s3" {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage)
		if err != nil {
			log.Fatal("Failed to initialize S3 object storage", zap.Error(err))
		}
		objectStorage = s3Storage
		log.Info("S3 object storage initialized",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("region", cfg.Storage.Region),
		)
	} else {
		objectStorage = storage.NewStubObjectStorage()
		log.Info("Stub object storage initialized (presigned URLs are not usable)")
	}

	// Initialize application services
	itemService := catalogapp.NewItemService(itemRepo)
	itemImageService := catalogapp.NewItemImageService(itemRepo, objectStorage)
	itemImageService.SetConfig(catalogapp.ItemImageServiceConfig{
		UploadURLExpiry:   cfg.Storage.UploadExpiry,
		DownloadURLExpiry: cfg.Storage.DownloadExpiry,
	})
	warehouseService := partnerapp.NewWarehouseService(warehouseRepo)
	clientService := partnerapp.NewClientService(clientRepo)
	vendorService := partnerapp.NewVendorService(vendorRepo)
	stockLedgerService := inventoryapp.NewStockLedgerService(inventoryScope, stockLedgerRepo)
	stockAlertService := inventoryapp.NewStockAlertService(inventoryScope, stockAlertRepo)
	salesService := tradeapp.NewSalesFulfillmentService(tradeScope, salesOrderRepo)
	purchaseService := tradeapp.NewPurchaseReceivingService(tradeScope, purchaseOrderRepo)
	paymentService := financeapp.NewPaymentService(financeScope, paymentRepo, ledgerEntryRepo)
	profitLossService := financeapp.NewProfitLossService(salesOrderRepo, purchaseOrderRepo, paymentRepo, profitLossRepo)

	// Snapshot cache for hot stock reads
	if cfg.Redis.Enabled {
		snapshotCache, err := cache.NewRedisSnapshotCache(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Redis.SnapshotTTL)
		if err != nil {
			log.Warn("Redis unavailable, continuing without snapshot cache", zap.Error(err))
		} else {
			stockLedgerService.SetSnapshotCache(snapshotCache)
			log.Info("Stock snapshot cache enabled", zap.Duration("ttl", cfg.Redis.SnapshotTTL))
		}
	}

	// Initialize event bus and handlers
	eventBus := event.NewInMemoryEventBus(log)

	// Stock below minimum -> alert creation
	if cfg.Alerting.Enabled {
		storeFactory := cache.NewIdempotencyStoreFactory(cfg.Redis, cache.WithLogger(log))
		idemStore := storeFactory.CreateInMemoryStore()
		if cfg.Redis.Enabled {
			store, err := storeFactory.CreateStore()
			if err != nil {
				log.Fatal("Failed to create idempotency store", zap.Error(err))
			}
			idemStore = store
		}

		belowMinimumHandler := inventoryapp.NewStockBelowMinimumHandler(log, inventoryScope).
			WithNameLookup(itemRepo, warehouseRepo)
		eventBus.Subscribe(event.NewIdempotentHandler(belowMinimumHandler, idemStore, log))

		log.Info("Stock alerting enabled",
			zap.Strings("events", belowMinimumHandler.EventTypes()),
		)
	}

	// Start event bus
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Inject event bus into services that publish events
	salesService.SetEventPublisher(eventBus)
	purchaseService.SetEventPublisher(eventBus)
	stockLedgerService.SetEventPublisher(eventBus)
	paymentService.SetEventPublisher(eventBus)

	// Periodic business metrics collection
	if meterProvider != nil && meterProvider.IsEnabled() {
		businessMetrics, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
			Meter:         meterProvider.Meter("partserp/business"),
			Logger:        log,
			StockProvider: telemetry.NewGormStockMetricsProvider(db.DB),
		})
		if err != nil {
			log.Warn("Failed to create business metrics", zap.Error(err))
		} else {
			businessMetrics.StartPeriodicCollection(context.Background(), 5*time.Minute)
			defer businessMetrics.Stop()
		}
	}

	// Initialize HTTP handlers
	itemHandler := handler.NewItemHandler(itemService, itemImageService)
	warehouseHandler := handler.NewWarehouseHandler(warehouseService)
	clientHandler := handler.NewClientHandler(clientService)
	vendorHandler := handler.NewVendorHandler(vendorService)
	stockHandler := handler.NewStockHandler(stockLedgerService)
	alertHandler := handler.NewAlertHandler(stockAlertService)
	salesOrderHandler := handler.NewSalesOrderHandler(salesService)
	purchaseOrderHandler := handler.NewPurchaseOrderHandler(purchaseService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	reportHandler := handler.NewReportHandler(profitLossService, paymentService)
	systemHandler := handler.NewSystemHandler(version, handler.ReadinessCheck{
		Name: "database",
		Check: func(ctx context.Context) error {
			return db.Ping()
		},
	})

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Tracing/Metrics - OpenTelemetry instrumentation (if enabled)
	// 5. Security - Add security headers
	// 6. CORS - Handle cross-origin requests
	// 7. BodyLimit - Limit request body size
	// 8. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	if cfg.Telemetry.Enabled {
		engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     true,
		}))
		engine.Use(middleware.SpanErrorMarker())
	}
	if meterProvider != nil && meterProvider.IsEnabled() {
		engine.Use(middleware.HTTPMetricsWithMeter(meterProvider.Meter("partserp/http"), true))
	}

	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health endpoints (outside API versioning)
	engine.GET("/healthz", systemHandler.Healthz)
	engine.GET("/readyz", systemHandler.Readyz)

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Catalog domain (items and item images)
	catalogRoutes := router.NewDomainGroup("catalog", "")
	catalogRoutes.POST("/items", itemHandler.Create)
	catalogRoutes.GET("/items", itemHandler.List)
	catalogRoutes.GET("/items/sku/:sku", itemHandler.GetBySKU)
	catalogRoutes.GET("/items/:id", itemHandler.Get)
	catalogRoutes.PUT("/items/:id", itemHandler.Update)
	catalogRoutes.POST("/items/:id/activate", itemHandler.Activate)
	catalogRoutes.POST("/items/:id/deactivate", itemHandler.Deactivate)
	catalogRoutes.POST("/items/:id/image", itemHandler.InitiateImageUpload)
	catalogRoutes.POST("/items/:id/image/confirm", itemHandler.ConfirmImageUpload)
	catalogRoutes.GET("/items/:id/image-url", itemHandler.GetImageURL)

	// Partner domain (warehouses, clients, vendors)
	partnerRoutes := router.NewDomainGroup("partner", "")
	partnerRoutes.POST("/warehouses", warehouseHandler.Create)
	partnerRoutes.GET("/warehouses", warehouseHandler.List)
	partnerRoutes.GET("/warehouses/:id", warehouseHandler.Get)
	partnerRoutes.PUT("/warehouses/:id", warehouseHandler.Update)
	partnerRoutes.POST("/warehouses/:id/default", warehouseHandler.SetDefault)
	partnerRoutes.POST("/warehouses/:id/deactivate", warehouseHandler.Deactivate)

	partnerRoutes.POST("/clients", clientHandler.Create)
	partnerRoutes.GET("/clients", clientHandler.List)
	partnerRoutes.GET("/clients/:id", clientHandler.Get)
	partnerRoutes.PUT("/clients/:id", clientHandler.Update)
	partnerRoutes.POST("/clients/:id/deactivate", clientHandler.Deactivate)

	partnerRoutes.POST("/vendors", vendorHandler.Create)
	partnerRoutes.GET("/vendors", vendorHandler.List)
	partnerRoutes.GET("/vendors/:id", vendorHandler.Get)
	partnerRoutes.PUT("/vendors/:id", vendorHandler.Update)
	partnerRoutes.POST("/vendors/:id/deactivate", vendorHandler.Deactivate)

	// Inventory domain (stock ledger, alerts)
	inventoryRoutes := router.NewDomainGroup("inventory", "")
	inventoryRoutes.GET("/stock", stockHandler.List)
	inventoryRoutes.GET("/stock/:item_id/:warehouse_id", stockHandler.GetSnapshot)
	inventoryRoutes.POST("/stock/increase", stockHandler.Increase)
	inventoryRoutes.POST("/stock/reserve", stockHandler.Reserve)
	inventoryRoutes.POST("/stock/release", stockHandler.Release)
	inventoryRoutes.POST("/stock/reduce", stockHandler.Reduce)
	inventoryRoutes.PUT("/stock/thresholds", stockHandler.SetThresholds)

	inventoryRoutes.GET("/alerts", alertHandler.List)
	inventoryRoutes.GET("/alerts/pending-count", alertHandler.PendingCount)
	inventoryRoutes.POST("/alerts/:id/acknowledge", alertHandler.Acknowledge)
	inventoryRoutes.POST("/alerts/:id/resolve", alertHandler.Resolve)

	// Trade domain (sales orders, purchase orders)
	tradeRoutes := router.NewDomainGroup("trade", "")
	tradeRoutes.POST("/sales-orders", salesOrderHandler.Create)
	tradeRoutes.GET("/sales-orders", salesOrderHandler.List)
	tradeRoutes.GET("/sales-orders/number/:number", salesOrderHandler.GetByNumber)
	tradeRoutes.GET("/sales-orders/:id", salesOrderHandler.Get)
	tradeRoutes.PUT("/sales-orders/:id/lines/:line_id", salesOrderHandler.UpdateLineQuantity)
	tradeRoutes.POST("/sales-orders/:id/confirm", salesOrderHandler.Confirm)
	tradeRoutes.POST("/sales-orders/:id/ship", salesOrderHandler.Ship)
	tradeRoutes.POST("/sales-orders/:id/deliver", salesOrderHandler.Deliver)
	tradeRoutes.POST("/sales-orders/:id/cancel", salesOrderHandler.Cancel)

	tradeRoutes.POST("/purchase-orders", purchaseOrderHandler.Create)
	tradeRoutes.GET("/purchase-orders", purchaseOrderHandler.List)
	tradeRoutes.GET("/purchase-orders/number/:number", purchaseOrderHandler.GetByNumber)
	tradeRoutes.GET("/purchase-orders/:id", purchaseOrderHandler.Get)
	tradeRoutes.PUT("/purchase-orders/:id/lines/:line_id", purchaseOrderHandler.UpdateLine)
	tradeRoutes.PUT("/purchase-orders/:id/warehouse", purchaseOrderHandler.SetWarehouse)
	tradeRoutes.POST("/purchase-orders/:id/receive", purchaseOrderHandler.Receive)
	tradeRoutes.POST("/purchase-orders/:id/cancel", purchaseOrderHandler.Cancel)

	// Finance domain (payments, reports)
	financeRoutes := router.NewDomainGroup("finance", "")
	financeRoutes.POST("/payments", paymentHandler.Record)
	financeRoutes.GET("/payments", paymentHandler.List)
	financeRoutes.GET("/payments/:id", paymentHandler.Get)
	financeRoutes.POST("/payments/:id/reconcile", paymentHandler.Reconcile)

	financeRoutes.POST("/reports/profit-loss", reportHandler.CalculateProfitLoss)
	financeRoutes.GET("/reports/profit-loss", reportHandler.GetProfitLoss)
	financeRoutes.GET("/reports/profit-loss/recent", reportHandler.ListRecentProfitLoss)
	financeRoutes.GET("/reports/ledger", reportHandler.LedgerEntries)
	financeRoutes.GET("/reports/trial-balance", reportHandler.TrialBalance)

	// Register all domain groups
	r.Register(catalogRoutes).
		Register(partnerRoutes).
		Register(inventoryRoutes).
		Register(tradeRoutes).
		Register(financeRoutes)

	// Setup routes
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
