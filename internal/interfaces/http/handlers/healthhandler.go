package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type dependencyCheck struct {
	name  string
	check func(ctx context.Context) error
}

// HealthHandler reports whether the database and Redis answer.
type HealthHandler struct {
	checks []dependencyCheck
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	h := &HealthHandler{}
	if db != nil {
		h.checks = append(h.checks, dependencyCheck{name: "database", check: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}})
	}
	if redisClient != nil {
		h.checks = append(h.checks, dependencyCheck{name: "redis", check: func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}})
	}
	return h
}

// HealthCheck handles GET /health
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]any
//	@Failure	503	{object}	map[string]any
//	@Router		/health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	components := make(map[string]string, len(h.checks))
	for _, dep := range h.checks {
		if err := dep.check(ctx); err != nil {
			components[dep.name] = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		components[dep.name] = "ok"
	}

	overall := "healthy"
	if status != http.StatusOK {
		overall = "degraded"
	}

	c.JSON(status, gin.H{
		"status":     overall,
		"service":    "preparos",
		"components": components,
	})
}
