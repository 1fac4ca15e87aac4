package v1

import (
	"net/http"
	"time"

	"hr-platform-backend/config"
	"hr-platform-backend/internal/delivery/http/middleware"
	"hr-platform-backend/internal/delivery/http/response"
	"hr-platform-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	DepartmentUC domain.DepartmentUsecase
	ResumeUC     domain.ResumeUsecase
	VacancyUC    domain.VacancyUsecase
	ApplicantUC  domain.ApplicantUsecase
	Validate     *validator.Validate
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:  deps.Config.RateLimitGlobalThreshold,
		Window: time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
	}))

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Single JSON-RPC entrypoint. Identity is resolved here when a token is
	// present; per-method role enforcement happens in the dispatcher.
	web := v1.Group("/web")
	web.Use(middleware.AuthMiddleware(deps.Config, deps.AuthUC))
	NewRPCHandler(web, deps.Validate, deps.DepartmentUC, deps.ResumeUC, deps.VacancyUC, deps.ApplicantUC)

	return r
}
