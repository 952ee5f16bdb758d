package main

import (
	"context"
	"log"
	"time"

	"faktur-backend/config"
	"faktur-backend/controllers"
	"faktur-backend/database"
	"faktur-backend/layout"
	"faktur-backend/logging"
	"faktur-backend/middlewares"
	"faktur-backend/pdfs"
	"faktur-backend/preview"
	"faktur-backend/routes"
	"faktur-backend/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// ---- Store
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	kv, err := database.Open(ctx, cfg, logger)
	cancel()
	if err != nil {
		logger.Fatal("could not open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer database.CloseKV(cfg.StoreDriver, kv, logger)

	renderer, err := preview.NewRenderer()
	if err != nil {
		logger.Fatal("could not load preview template", zap.Error(err))
	}

	ic := &controllers.InvoiceController{
		Store:     storage.NewInvoiceStore(kv, cfg.StoreKey, logger),
		Generator: pdfs.NewGenerator(layout.DefaultSetup(), logger.Named("pdf")),
		Preview:   renderer,
		Log:       logger,
	}

	// ---- Fiber app with global error handler + body limit
	app := fiber.New(fiber.Config{
		ErrorHandler: middlewares.ErrorHandler(logger),
		BodyLimit:    cfg.BodyLimitBytes,
	})

	app.Use(middlewares.RequestLogger(logger.Named("http")))

	// ---- CORS
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: false,
		AllowHeaders:     "Origin, Content-Type, Accept, " + middlewares.IdempotencyHeader,
		ExposeHeaders:    "Content-Disposition",
	}))

	// ---- Global rate limiter (applies to all routes; tune via env)
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: time.Duration(cfg.RateWindowSecs) * time.Second,
	}))

	// ---- Routes
	routes.Register(app, ic, middlewares.Idempotency(kv, logger.Named("idempotency")))

	// ---- Start
	logger.Info("API server starting", zap.String("port", cfg.Port), zap.String("store", cfg.StoreDriver))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}
