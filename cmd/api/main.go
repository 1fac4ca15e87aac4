package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hr-platform-backend/config"
	v1 "hr-platform-backend/internal/delivery/http/v1"
	"hr-platform-backend/internal/repository/postgres"
	"hr-platform-backend/internal/usecase"
	"hr-platform-backend/pkg/database"
	"hr-platform-backend/pkg/logger"
	"hr-platform-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting HR platform backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.RunMigrations {
		if err := database.RunMigrations(cfg.DBUrl, cfg.MigrationsDir); err != nil {
			logger.Log.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	// 4. Setup Redis (optional: department cache + rate limiting)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, continuing without cache", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	departmentRepo := postgres.NewDepartmentRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)
	vacancyRepo := postgres.NewVacancyRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo)
	departmentUC := usecase.NewDepartmentUsecase(departmentRepo, redis.Client(),
		time.Duration(cfg.DepartmentCacheTTLSeconds)*time.Second)
	resumeUC := usecase.NewResumeUsecase(resumeRepo)
	vacancyUC := usecase.NewVacancyUsecase(vacancyRepo)
	applicantUC := usecase.NewApplicantUsecase(userRepo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		DepartmentUC: departmentUC,
		ResumeUC:     resumeUC,
		VacancyUC:    vacancyUC,
		ApplicantUC:  applicantUC,
		Validate:     validate,
		Config:       cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
