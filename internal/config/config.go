package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	AccessTTL  string `yaml:"access_ttl"`
	RefreshTTL string `yaml:"refresh_ttl"`
	ResetTTL   string `yaml:"reset_ttl"`
}

type RateLimitConfig struct {
	Enabled bool   `yaml:"enabled"`
	Limit   int    `yaml:"limit"`
	Window  string `yaml:"window"`
}

type CORSConfig struct {
	Origins []string `yaml:"origins"`
}

type ConfigFile struct {
	App       AppConfig       `yaml:"app"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	JWT       JWTConfig       `yaml:"jwt"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	CORS      CORSConfig      `yaml:"cors"`
}

// Config is the resolved runtime configuration. The JWT secret is mandatory:
// Load fails without it so the process never starts with unsigned tokens.
type Config struct {
	Port             string
	GinMode          string
	DSN              string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	JWTSecret        string
	JWTIssuer        string
	AccessTTL        time.Duration
	RefreshTTL       time.Duration
	ResetTTL         time.Duration
	RateLimitEnabled bool
	RateLimitLimit   int
	RateLimitWindow  time.Duration
	CORSOrigins      []string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// Load reads config/config.yml when present, then applies environment
// overrides. Token TTLs default to 24h access, 7d refresh, 1h reset.
func Load() (*Config, error) {
	file, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		file = &ConfigFile{}
	}

	accessTTL, err := parseTTL(env("JWT_ACCESS_TTL", file.JWT.AccessTTL), 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}
	refreshTTL, err := parseTTL(env("JWT_REFRESH_TTL", file.JWT.RefreshTTL), 7*24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT refresh TTL: %w", err)
	}
	resetTTL, err := parseTTL(env("JWT_RESET_TTL", file.JWT.ResetTTL), time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid reset token TTL: %w", err)
	}
	window, err := parseTTL(env("RATE_LIMIT_WINDOW", file.RateLimit.Window), time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit window: %w", err)
	}

	port := file.App.Port
	if port == 0 {
		port = 3000
	}

	limit := file.RateLimit.Limit
	if limit == 0 {
		limit = 10
	}

	origins := file.CORS.Origins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}

	rateLimitEnabled := file.RateLimit.Enabled
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		rateLimitEnabled = v == "true"
	}

	cfg := &Config{
		Port:             env("PORT", strconv.Itoa(port)),
		GinMode:          env("GIN_MODE", file.App.GinMode),
		DSN:              env("DATABASE_DSN", file.Database.DSN),
		RedisAddr:        env("REDIS_ADDR", file.Redis.Addr),
		RedisPassword:    env("REDIS_PASSWORD", file.Redis.Password),
		RedisDB:          envInt("REDIS_DB", file.Redis.DB),
		JWTSecret:        env("JWT_SECRET", file.JWT.Secret),
		JWTIssuer:        env("JWT_ISSUER", file.JWT.Issuer),
		AccessTTL:        accessTTL,
		RefreshTTL:       refreshTTL,
		ResetTTL:         resetTTL,
		RateLimitEnabled: rateLimitEnabled,
		RateLimitLimit:   envInt("RATE_LIMIT_LIMIT", limit),
		RateLimitWindow:  window,
		CORSOrigins:      origins,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is not configured (JWT_SECRET or jwt.secret)")
	}
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "planete-xplorer"
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file ConfigFile
	if err := yaml.Unmarshal(bytes, &file); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}
	return &file, nil
}

func parseTTL(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}
