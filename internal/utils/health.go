package utils

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthStatus struct {
	Status    string          `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
	Services  []ServiceHealth `json:"services"`
}

type ServiceHealth struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthChecker probes the store and the cache with a short timeout each.
type HealthChecker struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	}

	if h.DB != nil {
		svc := ServiceHealth{Name: "PostgreSQL", Status: "up"}
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		sqlDB, err := h.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(pingCtx)
		}
		if err != nil {
			svc.Status = "down"
			svc.Message = err.Error()
			status.Status = "degraded"
		}
		cancel()
		status.Services = append(status.Services, svc)
	}

	if h.Redis != nil {
		svc := ServiceHealth{Name: "Redis", Status: "up"}
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := h.Redis.Ping(pingCtx).Err(); err != nil {
			svc.Status = "down"
			svc.Message = err.Error()
			status.Status = "degraded"
		}
		cancel()
		status.Services = append(status.Services, svc)
	}

	return status
}
