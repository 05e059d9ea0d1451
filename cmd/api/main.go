// @title           Task Service API
// @version         1.0
// @description     프로젝트 업무 관리 API
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://works.ati.co.kr/support
// @contact.email  support@ati.co.kr

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api/tasks

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"project-task-api/internal/client"
	"project-task-api/internal/config"
	"project-task-api/internal/database"
	"project-task-api/internal/job"
	"project-task-api/internal/metrics"
	"project-task-api/internal/repository"
	"project-task-api/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Task Service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
	)

	// Initialize database (실패해도 앱은 시작됨 - k8s pod 생존 보장)
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		// 백그라운드에서 DB 연결 재시도 (5초 간격)
		database.NewAsync(dbConfig, 5*time.Second, logger)
	} else {
		logger.Info("Database connected successfully")

		// Run auto migration (DB 연결된 경우만)
		if err := database.AutoMigrate(db); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		} else {
			logger.Info("Database migrations completed")
		}
	}

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	logger.Info("Metrics initialized")

	var dbStatsStop chan struct{}
	var businessCollector *metrics.BusinessMetricsCollector
	if db != nil {
		database.RegisterMetricsCallbacks(db, m)
		dbStatsStop = database.StartDBStatsCollector(db, m)
		businessCollector = metrics.NewBusinessMetricsCollector(db, m, logger)
		businessCollector.Start()
	}

	// Initialize Redis (회의록 처리 큐)
	redisClient, err := database.NewRedis(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Failed to connect to Redis, meeting processing disabled", zap.Error(err))
		redisClient = nil
	} else {
		logger.Info("Redis connected successfully", zap.String("addr", cfg.Redis.Addr()))
	}

	// Initialize S3 client
	var s3Client client.S3ClientInterface
	if cfg.S3.Bucket != "" && cfg.S3.Region != "" {
		realClient, err := client.NewS3Client(&cfg.S3)
		if err != nil {
			logger.Warn("Failed to initialize S3 client, attachment features may be limited", zap.Error(err))
		} else {
			s3Client = realClient
			logger.Info("S3 client initialized",
				zap.String("bucket", cfg.S3.Bucket),
				zap.String("region", cfg.S3.Region),
			)
		}
	} else {
		logger.Warn("S3 configuration incomplete, attachment features disabled")
	}

	// Background workers share the repository layer with the HTTP handlers
	attachmentRepo := repository.NewAttachmentRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)

	// Meeting transcription worker
	var processWorker *job.ProcessWorker
	if redisClient != nil && cfg.AI.BaseURL != "" && s3Client != nil {
		transcriber := client.NewTranscriptionClient(
			cfg.AI.BaseURL,
			cfg.AI.APIKey,
			cfg.AI.Model,
			cfg.AI.Timeout,
			logger,
			m,
		)
		processWorker = job.NewProcessWorker(redisClient, meetingRepo, transcriber, s3Client, logger)
		processWorker.Start()
		logger.Info("Meeting process worker started", zap.String("model", cfg.AI.Model))
	} else {
		logger.Warn("Meeting process worker disabled (requires Redis, AI API and S3 configuration)")
	}

	// Expired TEMP attachment cleanup (매시간)
	cronRunner := cron.New()
	if db != nil && s3Client != nil {
		cleanupJob := job.NewCleanupJob(attachmentRepo, s3Client, logger)
		if _, err := cronRunner.AddJob("@hourly", cleanupJob); err != nil {
			logger.Error("Failed to schedule attachment cleanup job", zap.Error(err))
		} else {
			cronRunner.Start()
			logger.Info("Attachment cleanup job scheduled")
		}
	}

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:          db,
		RedisClient: redisClient,
		Logger:      logger,
		JWT:         &cfg.JWT,
		BasePath:    cfg.Server.BasePath,
		S3Client:    s3Client,
		Metrics:     m,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Task Service started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s%s/swagger/index.html", cfg.Server.Port, cfg.Server.BasePath)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	cronRunner.Stop()
	if processWorker != nil {
		processWorker.Stop()
	}
	if businessCollector != nil {
		businessCollector.Stop()
	}
	if dbStatsStop != nil {
		close(dbStatsStop)
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", zap.Error(err))
		}
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
