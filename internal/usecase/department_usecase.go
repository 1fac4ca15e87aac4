package usecase

import (
	"context"
	"encoding/json"
	"time"

	"hr-platform-backend/internal/domain"
	"hr-platform-backend/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const departmentCacheKey = "departments:list"

type departmentUsecase struct {
	departmentRepo domain.DepartmentRepository
	cache          *redis.Client // nil when redis is not configured
	cacheTTL       time.Duration
}

func NewDepartmentUsecase(departmentRepo domain.DepartmentRepository, cache *redis.Client, cacheTTL time.Duration) domain.DepartmentUsecase {
	return &departmentUsecase{
		departmentRepo: departmentRepo,
		cache:          cache,
		cacheTTL:       cacheTTL,
	}
}

// List serves the department list from redis when possible. Cache failures
// are logged and the request falls through to the database.
func (u *departmentUsecase) List(ctx context.Context) ([]domain.Department, error) {
	if u.cache != nil {
		cached, err := u.cache.Get(ctx, departmentCacheKey).Bytes()
		if err == nil {
			var departments []domain.Department
			if err := json.Unmarshal(cached, &departments); err == nil {
				return departments, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("department cache read failed", "error", err)
		}
	}

	departments, err := u.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if payload, err := json.Marshal(departments); err == nil {
			if err := u.cache.Set(ctx, departmentCacheKey, payload, u.cacheTTL).Err(); err != nil {
				logger.Log.Warn("department cache write failed", "error", err)
			}
		}
	}

	return departments, nil
}
