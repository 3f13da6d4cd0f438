package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string `validate:"omitempty,oneof=development production test"`
	Port     string `validate:"required,numeric"`
	LogLevel string

	JWTSecret string `validate:"required"`

	RemoteAPIBaseURL string        `validate:"required,url"`
	RemoteAPIToken   string
	RemoteAPITimeout time.Duration `validate:"gt=0"`

	// Empty DatabaseURL keeps the submission log in memory.
	DatabaseURL string `validate:"omitempty,url"`
	DBMaxConns  int    `validate:"gte=0"`
	DBMinConns  int    `validate:"gte=0,ltefield=DBMaxConns"`

	AllowedOrigins []string `validate:"dive,url"`

	R2 R2Config
}

// R2Config is optional. Publishing exports is disabled unless every field is set.
type R2Config struct {
	Endpoint      string `validate:"omitempty,url"`
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string `validate:"omitempty,url"`
}

func (r R2Config) Enabled() bool {
	return r.Endpoint != "" &&
		r.AccessKey != "" &&
		r.SecretKey != "" &&
		r.Bucket != "" &&
		r.PublicBaseURL != ""
}

var validate = validator.New()

// Load reads the .env file (outside production) and the process environment.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() (*Config, error) {
	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		Port:     getEnv("PORT", "8000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		RemoteAPIBaseURL: strings.TrimRight(os.Getenv("REMOTE_API_BASE_URL"), "/"),
		RemoteAPIToken:   os.Getenv("REMOTE_API_TOKEN"),
		RemoteAPITimeout: getEnvAsDuration("REMOTE_API_TIMEOUT", 15*time.Second),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBMaxConns:  getEnvAsInt("DB_MAX_CONNS", 10),
		DBMinConns:  getEnvAsInt("DB_MIN_CONNS", 2),

		AllowedOrigins: getEnvAsList(
			"ALLOWED_ORIGINS",
			[]string{"http://localhost:3000", "http://localhost:5173"},
		),

		R2: R2Config{
			Endpoint:      os.Getenv("R2_ENDPOINT"),
			AccessKey:     os.Getenv("R2_ACCESS_KEY"),
			SecretKey:     os.Getenv("R2_SECRET_KEY"),
			Bucket:        os.Getenv("R2_BUCKET_NAME"),
			PublicBaseURL: strings.TrimRight(os.Getenv("R2_PUBLIC_BASE_URL"), "/"),
		},
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
