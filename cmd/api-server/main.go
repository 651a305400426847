package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/school-dashboard-api/api/swagger"
	"github.com/noah-isme/school-dashboard-api/internal/handler"
	internalmiddleware "github.com/noah-isme/school-dashboard-api/internal/middleware"
	"github.com/noah-isme/school-dashboard-api/internal/repository"
	"github.com/noah-isme/school-dashboard-api/internal/service"
	"github.com/noah-isme/school-dashboard-api/pkg/cache"
	"github.com/noah-isme/school-dashboard-api/pkg/config"
	"github.com/noah-isme/school-dashboard-api/pkg/database"
	"github.com/noah-isme/school-dashboard-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/school-dashboard-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/school-dashboard-api/pkg/middleware/requestid"
	"github.com/noah-isme/school-dashboard-api/pkg/storage"
)

// @title School Dashboard API
// @version 1.0.0
// @description Backend for the school administration dashboard
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	var (
		studentRepo      repository.StudentRepository
		attendanceRepo   repository.AttendanceRepository
		behaviorRepo     repository.BehaviorRepository
		announcementRepo repository.AnnouncementRepository
		userRepo         repository.UserRepository
		scheduleRepo     repository.ScheduleRepository
	)

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			logr.Sugar().Fatalw("postgres connection failed", "error", err)
		}
		defer db.Close() //nolint:errcheck
		studentRepo = repository.NewPostgresStudentRepository(db)
		attendanceRepo = repository.NewPostgresAttendanceRepository(db)
		behaviorRepo = repository.NewPostgresBehaviorRepository(db)
		announcementRepo = repository.NewPostgresAnnouncementRepository(db)
		userRepo = repository.NewPostgresUserRepository(db)
		scheduleRepo = repository.NewStaticScheduleRepository(repository.DefaultSchedule())
		logr.Info("storage backend ready", zap.String("driver", config.DriverPostgres))
	default:
		seed := repository.Seed{}
		if cfg.Seed.Enabled {
			seed = repository.DefaultSeed(time.Now())
		}
		store, err := repository.NewMemoryStore(seed)
		if err != nil {
			logr.Sugar().Fatalw("memory store init failed", "error", err)
		}
		studentRepo = store.Students
		attendanceRepo = store.Attendance
		behaviorRepo = store.Behavior
		announcementRepo = store.Announcements
		userRepo = store.Users
		scheduleRepo = store.Schedule
		logr.Info("storage backend ready", zap.String("driver", config.DriverMemory), zap.Bool("seeded", cfg.Seed.Enabled))
	}

	metricsSvc := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Redis.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, caching disabled", zap.Error(err))
		} else {
			defer client.Close() //nolint:errcheck
			cacheRepo = repository.NewCacheRepository(client)
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr)

	exportStore, err := storage.NewLocalStorage(cfg.Export.Dir)
	if err != nil {
		logr.Sugar().Fatalw("export storage init failed", "error", err)
	}
	archiver := service.NewExportArchiver(exportStore, cfg.Export.Retention, logr)
	archiver.Start(context.Background())
	defer archiver.Stop()

	studentSvc := service.NewStudentService(studentRepo)
	attendanceSvc := service.NewAttendanceService(studentRepo, attendanceRepo, cacheSvc, logr)
	behaviorSvc := service.NewBehaviorService(studentRepo, behaviorRepo, cacheSvc)
	announcementSvc := service.NewAnnouncementService(announcementRepo, cacheSvc, logr)
	scheduleSvc := service.NewScheduleService(scheduleRepo, cacheSvc, logr)
	reportSvc := service.NewReportService(studentRepo, attendanceRepo, archiver, logr)
	authSvc := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Summaries:     attendanceSvc,
		Announcements: announcementSvc,
		Students:      studentRepo,
		Attendance:    attendanceRepo,
		Behavior:      behaviorRepo,
		Cache:         cacheSvc,
		Logger:        logr,
	})

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	metricsHandler := handler.NewMetricsHandler(metricsSvc)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.Register(r, cfg.APIPrefix, handler.Handlers{
		Dashboard:    handler.NewDashboardHandler(dashboardSvc),
		Student:      handler.NewStudentHandler(studentSvc),
		Attendance:   handler.NewAttendanceHandler(attendanceSvc),
		Behavior:     handler.NewBehaviorHandler(behaviorSvc),
		Announcement: handler.NewAnnouncementHandler(announcementSvc),
		Schedule:     handler.NewScheduleHandler(scheduleSvc),
		Report:       handler.NewReportHandler(reportSvc),
		Auth:         handler.NewAuthHandler(authSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "prefix", cfg.APIPrefix)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
