package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/edupulse-team/edupulse/pkg/validator"

	"github.com/edupulse-team/edupulse/internal/adapter/handler"
	"github.com/edupulse-team/edupulse/internal/adapter/repository/mongodb"
	"github.com/edupulse-team/edupulse/internal/infrastructure/cache"
	"github.com/edupulse-team/edupulse/internal/infrastructure/database"
	"github.com/edupulse-team/edupulse/internal/infrastructure/storage"
	"github.com/edupulse-team/edupulse/internal/usecase/analytics"
	"github.com/edupulse-team/edupulse/internal/usecase/attendance"
	"github.com/edupulse-team/edupulse/internal/usecase/meeting"
	"github.com/edupulse-team/edupulse/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize document store
	log.Println("📦 Connecting to MongoDB...")
	mongoClient, db, err := database.NewMongoDatabase(&cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer database.CloseMongo(mongoClient)

	// Initialize cache
	var cacheStore cache.Store
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(&cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		cacheStore = redisStore
	} else {
		log.Println("📦 Redis disabled, using in-memory cache")
		cacheStore = cache.NewMemoryStore()
	}

	// Initialize object storage for export archival
	var archiver attendance.ExportArchiver
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to object storage...")
		minioClient, err := storage.NewMinIOClient(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to object storage: %v", err)
		}
		archiver = minioClient
	} else {
		log.Println("🗄️  Object storage disabled, exports are stream-only")
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := mongodb.NewMeetingRepository(db)
	attendanceRepo := mongodb.NewAttendanceRepository(db)
	emotionRepo := mongodb.NewEmotionRepository(db)
	fatigueRepo := mongodb.NewFatigueRepository(db)
	headPoseRepo := mongodb.NewHeadPoseRepository(db)
	snapshotRepo := mongodb.NewSnapshotRepository(db)
	transcriptRepo := mongodb.NewTranscriptRepository(db)

	// Initialize services
	log.Println("✨ Initializing services...")
	attendanceService := attendance.NewAttendanceService(attendanceRepo, archiver, logger)
	meetingService := meeting.NewMeetingService(meetingRepo, transcriptRepo, attendanceService, cacheStore, logger)
	analyticsService := analytics.NewAnalyticsService(emotionRepo, fatigueRepo, headPoseRepo, snapshotRepo, attendanceRepo)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	meetingHandler := handler.NewMeetingHandler(meetingService, logger)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService, logger)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler, attendanceHandler, analyticsHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.Server.Addr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
