package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/nordnotes/nordnotes/backend/go-services/handlers"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/config"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/files"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/market"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/seed"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/storage"
	"github.com/nordnotes/nordnotes/backend/go-services/pkg/logger"
	"github.com/nordnotes/nordnotes/backend/go-services/pkg/metrics"
	"github.com/nordnotes/nordnotes/backend/go-services/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.SetFormat(cfg.Log.Format)
	logger.Infof("config loaded: log=%s store=%s redis=%v minio=%v seed=%s", logger.LevelString(), cfg.Store.Backend, cfg.Redis.Host != "", cfg.MinIO.Enabled(), cfg.Market.SeedVersion)

	ctx := context.Background()
	store, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to open store: %v", err)
	}
	defer closeStore()

	seeded, err := seed.NewLoader(store, cfg.Market.SeedVersion).EnsureSeeded(ctx)
	if err != nil {
		logger.Fatalf("failed to seed demo data: %v", err)
	}
	if seeded {
		logger.Infof("demo data seeded (version %s)", cfg.Market.SeedVersion)
	}
	svc := market.New(ctx, store, market.OptionsFromConfig(cfg.Market))

	var fileStore files.Store
	if cfg.MinIO.Enabled() {
		ms, err := files.NewMinIOStore(ctx, cfg.MinIO)
		if err != nil {
			logger.Warnf("file storage unavailable, uploads disabled: %v", err)
		} else {
			fileStore = ms
			logger.Infof("using MinIO bucket %s at %s", cfg.MinIO.Bucket, cfg.MinIO.Endpoint)
		}
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Lightweight CORS middleware for the demo frontend.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, "+middleware.UserHeader)
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length, Content-Disposition")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})
	r.Use(gin.Logger(), gin.Recovery())

	// Optional global rate limiter (per acting user, otherwise per-IP)
	var limiterRedis *redis.Client
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && cfg.Redis.Host != "" {
			limiterRedis = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})
			defer func() { _ = limiterRedis.Close() }()
			if err := limiterRedis.Ping(ctx).Err(); err != nil {
				logger.Warnf("failed to connect to Redis for rate limiting (%s): %v", cfg.Redis.Addr(), err)
			}
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(limiterRedis, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
		logger.Infof("rate limiter enabled: rps=%v burst=%d redis=%v", cfg.RateLimit.RPS, cfg.RateLimit.Burst, limiterRedis != nil)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint: 200 only when the store (and the limiter's Redis, if used) answer
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		deps["store"] = store.Ping(c.Request.Context()) == nil
		ready = ready && deps["store"]

		if limiterRedis != nil {
			deps["redis"] = limiterRedis.Ping(c.Request.Context()).Err() == nil
			ready = ready && deps["redis"]
		}
		deps["files"] = fileStore != nil

		status, code := "ready", http.StatusOK
		if !ready {
			status, code = "not_ready", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	handlers.RegisterSwagger(r)
	handlers.NewMarketHandler(svc, fileStore).Register(r.Group("/"))

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		logger.Infof("Starting marketplace API on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infof("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("forced shutdown: %v", err)
	}
}
