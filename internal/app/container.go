package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Biholo/planete-xplorer/domain"
	"github.com/Biholo/planete-xplorer/internal/config"
	"github.com/Biholo/planete-xplorer/internal/infrastructure/auth"
	"github.com/Biholo/planete-xplorer/internal/infrastructure/database"
	"github.com/Biholo/planete-xplorer/internal/infrastructure/ratelimit"
	"github.com/Biholo/planete-xplorer/internal/infrastructure/repositories"
	"github.com/Biholo/planete-xplorer/internal/services"
)

// Container holds all wired dependencies.
type Container struct {
	Config *config.Config
	Log    *logrus.Logger

	DB          *gorm.DB
	RedisClient *redis.Client

	UserRepo     domain.UserRepository
	TokenRepo    domain.TokenRepository
	CategoryRepo domain.CategoryRepository
	SystemRepo   domain.SystemRepository
	ObjectRepo   domain.CelestialObjectRepository

	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	AuthSvc     domain.AuthService
	Limiter     domain.RateLimiter
}

// NewContainer creates and initializes all dependencies.
func NewContainer(cfg *config.Config, log *logrus.Logger) (*Container, error) {
	c := &Container{Config: cfg, Log: log}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("database open: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("database migrate: %w", err)
	}
	c.DB = db

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rdb.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	c.RedisClient = rdb.Client

	c.UserRepo = repositories.NewUserRepository(db)
	c.TokenRepo = repositories.NewTokenRepository(db)
	c.CategoryRepo = repositories.NewCategoryRepository(db)
	c.SystemRepo = repositories.NewSystemRepository(db)
	c.ObjectRepo = repositories.NewCelestialObjectRepository(db)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)
	c.AuthSvc = services.NewAuthService(c.UserRepo, c.TokenRepo, c.PasswordSvc, c.TokenSvc, cfg.ResetTTL, log)
	if cfg.RateLimitEnabled {
		c.Limiter = ratelimit.NewRedisLimiter(c.RedisClient, cfg.RateLimitLimit, cfg.RateLimitWindow)
	}

	return c, nil
}

// Close closes all connections.
func (c *Container) Close() error {
	if c.RedisClient != nil {
		_ = c.RedisClient.Close()
	}
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
