package http

import (
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"preparos/internal/application/balance"
	"preparos/internal/infrastructure/auth"
	"preparos/internal/infrastructure/cache"
	"preparos/internal/infrastructure/ratelimit"
	"preparos/internal/infrastructure/repository"
	"preparos/internal/interfaces/http/middleware"
	"preparos/internal/shared/db"
	"preparos/internal/shared/services/markdown"
)

// initInfrastructure creates repositories, auth services and middlewares.
func (c *Container) initInfrastructure() {
	cfg := c.cfg
	log := c.log

	c.repos = newRepositories(c.db, c.redis)
	c.txManager = db.NewTransactionManager(c.db)
	c.markdown = markdown.NewMarkdownService()

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.jwtService = &jwtServiceAdapter{c.jwtSvc}
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	c.rateLimiter = ratelimit.NewRedisRateLimiter(c.redis)

	c.calculator = balance.NewCalculator(
		c.repos.batchRepo,
		c.repos.sessionRepo,
		c.repos.transferRepo,
		decimal.NewFromFloat(cfg.Stock.LowThreshold),
	)

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.repos.sessionStore, log)
	c.profileMiddleware = middleware.NewProfileMiddleware(c.repos.profileRepo, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, log)
	c.loginRateLimit = middleware.NewRateLimitMiddleware(c.rateLimiter, "login", ratelimit.Rule{
		Limit:  cfg.Auth.LoginRate.Limit,
		Window: time.Duration(cfg.Auth.LoginRate.WindowSeconds) * time.Second,
	}, log)
}

// newRepositories creates all repository instances. Server sessions live
// in Redis, everything else in the database.
func newRepositories(gormDB *gorm.DB, redisClient *redis.Client) *repositories {
	return &repositories{
		userRepo:     repository.NewUserRepository(gormDB),
		sessionStore: cache.NewRedisSessionStore(redisClient),
		profileRepo:  repository.NewProfileRepository(gormDB),
		batchRepo:    repository.NewBatchRepository(gormDB),
		sessionRepo:  repository.NewSessionRepository(gormDB),
		transferRepo: repository.NewTransferRepository(gormDB),
	}
}
