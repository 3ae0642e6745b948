package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration shared by all services.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Gateway  GatewayConfig
	OTP      OTPConfig
	Profile  ProfileConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines token signing and credential hashing parameters. The
// signing secret is shared verbatim between the issuer and every verifier;
// there is no rotation and no per-tenant keying.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
	BcryptCost            int
}

// GatewayConfig holds upstream addresses and the two route classification
// tables. Both tables are read once at startup; changing them requires a
// restart.
type GatewayConfig struct {
	AuthUpstream string
	UserUpstream string
	BookUpstream string
	CartUpstream string

	PublicPaths    []string
	ProtectedPaths []string

	AllowOrigin string
}

// OTPConfig controls one-time-passcode issuance for sign-up.
type OTPConfig struct {
	TTLMinutes int
	DevMode    bool
}

// ProfileConfig points the auth service at the user-profile service for the
// best-effort account notification after sign-up.
type ProfileConfig struct {
	UserServiceURL string
	TimeoutSeconds int
}

// Default route tables, mirroring the deployed gateway configuration. A path
// matching a public prefix never requires a token even when it also matches a
// protected prefix.
var (
	defaultPublicPaths = []string{
		"/api/auth/sign-up",
		"/api/auth/sign-in",
		"/api/auth/send-otp",
		"/api/auth/verify-otp",
		"/api/auth/forgot-password",
		"/api/books/paged",
	}
	defaultProtectedPaths = []string{
		"/api/cart/",
		"/api/orders/",
		"/customers/",
	}
)

// Load reads configuration from environment variables, applying defaults
// where possible. The JWT secret deliberately has no default; services that
// sign or verify tokens must call RequireJWTSecret before serving.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "bookstore"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             os.Getenv("AUTH_JWT_SECRET"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 30),
			BcryptCost:            getEnvAsInt("AUTH_BCRYPT_COST", 12),
		},
		Gateway: GatewayConfig{
			AuthUpstream:   getEnv("GATEWAY_AUTH_UPSTREAM", "http://127.0.0.1:8000"),
			UserUpstream:   getEnv("GATEWAY_USER_UPSTREAM", "http://127.0.0.1:8001"),
			BookUpstream:   getEnv("GATEWAY_BOOK_UPSTREAM", "http://127.0.0.1:8002"),
			CartUpstream:   getEnv("GATEWAY_CART_UPSTREAM", "http://127.0.0.1:8003"),
			PublicPaths:    getEnvAsList("GATEWAY_PUBLIC_PATHS", defaultPublicPaths),
			ProtectedPaths: getEnvAsList("GATEWAY_PROTECTED_PATHS", defaultProtectedPaths),
			AllowOrigin:    getEnv("GATEWAY_ALLOW_ORIGIN", "http://127.0.0.1:3333"),
		},
		OTP: OTPConfig{
			TTLMinutes: getEnvAsInt("OTP_TTL_MINUTES", 5),
			DevMode:    getEnvAsBool("OTP_DEV_MODE", true),
		},
		Profile: ProfileConfig{
			UserServiceURL: getEnv("PROFILE_USER_SERVICE_URL", "http://127.0.0.1:8001"),
			TimeoutSeconds: getEnvAsInt("PROFILE_TIMEOUT_SECONDS", 3),
		},
	}

	return cfg, nil
}

// RequireJWTSecret fails startup for processes that sign or verify tokens.
// A missing secret must prevent the process from serving traffic at all.
func (c *Config) RequireJWTSecret() error {
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}
	return nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// TTL returns the OTP expiry duration.
func (o OTPConfig) TTL() time.Duration {
	return time.Duration(o.TTLMinutes) * time.Minute
}

// Timeout returns the bounded duration for the user-save notification call.
func (p ProfileConfig) Timeout() time.Duration {
	if p.TimeoutSeconds <= 0 {
		return 3 * time.Second
	}
	return time.Duration(p.TimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
