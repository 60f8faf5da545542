package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aronia-backend/controllers"
	"aronia-backend/database"
	"aronia-backend/middleware"
	"aronia-backend/repository"
	"aronia-backend/routes"
	"aronia-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Initialize structured logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		zap.L().Fatal("Failed to load configuration", zap.Error(err))
	}

	// --- 1. Store connection (non-fatal) ---
	// The service must come up and serve degraded responses even when the
	// store is unconfigured or unreachable.
	if cfg.DatabaseURL == "" {
		zap.L().Warn("DATABASE_URL not set, running without a document store")
	} else if err := database.ConnectWithConfig(cfg.DatabaseURL, cfg.DatabaseName); err != nil {
		zap.L().Warn("MongoDB connection failed, running without a document store", zap.Error(err))
	}

	// --- 2. Dependency injection ---
	productRepo := repository.NewProductRepository(database.DB)
	orderRepo := repository.NewOrderRepository(database.DB)

	catalogService := services.NewCatalogService(productRepo, logger)
	orderService := services.NewOrderService(orderRepo, logger)

	productController := controllers.NewProductController(catalogService)
	orderController := controllers.NewOrderController(orderService)
	systemController := controllers.NewSystemController(database.DB, cfg.DatabaseURL != "", os.Getenv("DATABASE_NAME") != "")

	// --- 3. HTTP server & middleware ---
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Request timeout middleware
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// --- 4. Route registration ---
	routes.RegisterRoutes(r, productController, orderController, systemController)

	// --- 5. Graceful shutdown ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Aronia backend starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down Aronia backend...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := database.Close(); err != nil {
		zap.L().Error("Failed to close MongoDB", zap.Error(err))
	}

	zap.L().Info("Aronia backend stopped gracefully")
}
