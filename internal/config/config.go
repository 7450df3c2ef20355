package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env             string
	ServerPort      string
	MySQLDSN        string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	BodyLimit       string
	CORSOrigins     []string
	LogLevel        string
	CronSpec        string

	Upload   UploadConfig
	Supabase SupabaseConfig
	Seed     SeedConfig
}

// UploadConfig bounds multipart requests and tells where files go.
type UploadConfig struct {
	Dir              string
	PublicPrefix     string
	MaxFileSize      int64
	MaxFiles         int
	MaxParts         int
	MaxFields        int
	MaxFieldNameSize int
	MaxFieldSize     int64
}

// SupabaseConfig enables remote storage when URL and Key are both set.
type SupabaseConfig struct {
	URL    string
	Key    string
	Bucket string
}

// Enabled reports whether uploads should go to Supabase storage.
func (s SupabaseConfig) Enabled() bool {
	return s.URL != "" && s.Key != ""
}

// SeedConfig drives cmd/seed.
type SeedConfig struct {
	SuperAdminName     string
	SuperAdminEmail    string
	SuperAdminPassword string
	CategoriesSource   string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:             getEnv("APP_ENV", "development"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		MySQLDSN:        getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/learnhub?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       getEnv("JWT_SECRET", "change-me"),
		AccessTokenTTL:  getEnvDuration("ACCESS_TOKEN_TTL", 24*time.Hour),
		RefreshTokenTTL: getEnvDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		BodyLimit:       getEnv("BODY_LIMIT", "10M"),
		CORSOrigins:     getEnvList("CORS_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CronSpec:        getEnv("CRON_SPEC", "@hourly"),
		Upload: UploadConfig{
			Dir:              getEnv("UPLOAD_DIR", "./uploads"),
			PublicPrefix:     getEnv("UPLOAD_PUBLIC_PREFIX", "/uploads"),
			MaxFileSize:      getEnvInt64("UPLOAD_MAX_FILE_SIZE", 5<<20),
			MaxFiles:         getEnvInt("UPLOAD_MAX_FILES", 5),
			MaxParts:         getEnvInt("UPLOAD_MAX_PARTS", 30),
			MaxFields:        getEnvInt("UPLOAD_MAX_FIELDS", 25),
			MaxFieldNameSize: getEnvInt("UPLOAD_MAX_FIELD_NAME_SIZE", 100),
			MaxFieldSize:     getEnvInt64("UPLOAD_MAX_FIELD_SIZE", 1<<20),
		},
		Supabase: SupabaseConfig{
			URL:    os.Getenv("SUPABASE_URL"),
			Key:    os.Getenv("SUPABASE_KEY"),
			Bucket: getEnv("SUPABASE_BUCKET", "uploads"),
		},
		Seed: SeedConfig{
			SuperAdminName:     getEnv("SEED_SUPERADMIN_NAME", "Super Admin"),
			SuperAdminEmail:    getEnv("SEED_SUPERADMIN_EMAIL", "superadmin@example.com"),
			SuperAdminPassword: os.Getenv("SEED_SUPERADMIN_PASSWORD"),
			CategoriesSource:   os.Getenv("SEED_CATEGORIES_SOURCE"),
		},
	}
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
