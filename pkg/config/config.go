package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/kaytee124/jobserverapi/pkg/storage/mongodb"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Port        string
	StoreDriver string

	MongoURI      string
	MongoDatabase string
	DatabaseURL   string

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	OpenAIAPIKey      string
	OpenAIBaseURL     string
	OpenAIModel       string
	OpenAIAppTitle    string
	OpenAIReferer     string
	CompletionTimeout time.Duration
	MatchThreshold    int

	UploadDir      string
	MaxUploadBytes int
	CORSOrigins    string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:              getEnv("PORT", "5000"),
		StoreDriver:       strings.ToLower(getEnv("STORE_DRIVER", DriverMongo)),
		MongoURI:          mongoURI(),
		MongoDatabase:     getEnv("MONGODB_DATABASE", "jobPortal"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		JWTIssuer:         getEnv("JWT_ISSUER", "job-portal"),
		JWTTTLMinutes:     getEnvInt("JWT_TTL_MINUTES", 60),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:     os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:       os.Getenv("OPENAI_MODEL"),
		OpenAIAppTitle:    os.Getenv("OPENAI_APP_TITLE"),
		OpenAIReferer:     os.Getenv("OPENAI_REFERER"),
		CompletionTimeout: time.Duration(getEnvInt("COMPLETION_TIMEOUT_SECONDS", 30)) * time.Second,
		MatchThreshold:    getEnvInt("MATCH_THRESHOLD_PERCENT", 60),
		UploadDir:         getEnv("UPLOAD_DIR", os.TempDir()),
		MaxUploadBytes:    getEnvInt("MAX_UPLOAD_MB", 15) * 1024 * 1024,
		CORSOrigins:       getEnv("CORS_ORIGINS", "*"),
	}
	return cfg
}

// Validate reports settings the server cannot start without.
func (c Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.JWTTTLMinutes <= 0 {
		errs = append(errs, errors.New("JWT_TTL_MINUTES must be positive"))
	}
	switch c.StoreDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			errs = append(errs, errors.New("MONGODB_URI or DB_USER, DB_PASS and MONGODB_HOST are required for the mongo store"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres store"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver))
	}
	if c.MatchThreshold < 1 || c.MatchThreshold > 100 {
		errs = append(errs, errors.New("MATCH_THRESHOLD_PERCENT must be within 1..100"))
	}
	if c.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("MAX_UPLOAD_MB must be positive"))
	}
	return errors.Join(errs...)
}

// JudgeEnabled is false when no completion key is configured; CVs are then
// stored without a verdict.
func (c Config) JudgeEnabled() bool { return c.OpenAIAPIKey != "" }

func mongoURI() string {
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		return uri
	}
	user, host := os.Getenv("DB_USER"), os.Getenv("MONGODB_HOST")
	if user == "" || host == "" {
		return ""
	}
	return mongodb.AtlasURI(user, os.Getenv("DB_PASS"), host, getEnv("MONGODB_APP_NAME", "Job-portal"))
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
