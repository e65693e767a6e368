package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"preparos/internal/application/balance"
	"preparos/internal/infrastructure/auth"
	"preparos/internal/infrastructure/config"
	"preparos/internal/infrastructure/permission"
	"preparos/internal/infrastructure/ratelimit"
	"preparos/internal/interfaces/http/middleware"
	"preparos/internal/shared/db"
	"preparos/internal/shared/logger"
	"preparos/internal/shared/services/markdown"
)

// Container holds the infrastructure components, repositories, use cases,
// handlers and middlewares of the HTTP server and wires them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	profileMiddleware    *middleware.ProfileMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	loginRateLimit       *middleware.RateLimitMiddleware

	// Shared services
	jwtSvc      *auth.JWTService
	jwtService  *jwtServiceAdapter
	hasher      *auth.BcryptPasswordHasher
	enforcer    *permission.Enforcer
	rateLimiter ratelimit.RateLimiter
	txManager   *db.TransactionManager
	markdown    markdown.MarkdownService
	calculator  *balance.Calculator
}

// NewContainer wires every component. The redis client is owned by the
// container and closed by Shutdown.
func NewContainer(gormDB *gorm.DB, redisClient *redis.Client, enforcer *permission.Enforcer, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine:   gin.New(),
		db:       gormDB,
		cfg:      cfg,
		log:      log,
		redis:    redisClient,
		enforcer: enforcer,
	}

	c.initInfrastructure()
	c.initUseCases()
	c.initHandlers()

	return c
}

// GetEngine returns the Gin engine
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

func (c *Container) Shutdown(ctx context.Context) error {
	if c.redis == nil {
		return nil
	}
	done := make(chan error, 1)
	go func() { done <- c.redis.Close() }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
