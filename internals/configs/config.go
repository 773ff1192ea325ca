package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once in main and passed by reference into the storage
// client, the lifecycle manager, and the route setup. Nothing below reads
// the process environment after Load returns.
type Config struct {
	Port string

	DB DBConfig
	S3 S3Config

	// HMAC secret of the external identity provider; admin routes verify
	// tokens minted there, we never issue tokens ourselves.
	JWTSecret string

	AllowOrigins []string
}

type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
	SSLMode  string
}

type S3Config struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	// Optional custom endpoint for S3-compatible services (MinIO, Ceph RGW).
	Endpoint string

	PresignTTL time.Duration
}

func (d DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=gymclub&options=-c statement_timeout=3000",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// Load reads .env (when present) and assembles the config. Bucket/region are
// a fatal startup condition: every asset route depends on them.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment as-is")
	}

	cfg := &Config{
		Port:      getEnv("PORT", "3000"),
		JWTSecret: getEnv("JWT_SECRET", ""),
		DB: DBConfig{
			User:     getEnv("DB_USER", ""),
			Password: getEnv("DB_PASSWORD", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "gymclub"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		S3: S3Config{
			Bucket:     getEnv("S3_BUCKET", ""),
			Region:     getEnv("S3_REGION", ""),
			AccessKey:  getEnv("S3_ACCESS_KEY_ID", ""),
			SecretKey:  getEnv("S3_SECRET_ACCESS_KEY", ""),
			Endpoint:   getEnv("S3_ENDPOINT", ""),
			PresignTTL: time.Duration(getEnvInt("S3_PRESIGN_TTL_SECONDS", 900)) * time.Second,
		},
		AllowOrigins: splitCSV(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
	}

	if cfg.S3.Bucket == "" || cfg.S3.Region == "" {
		log.Fatal("S3_BUCKET and S3_REGION must be set; asset routes cannot start without them")
	}
	if cfg.JWTSecret == "" {
		log.Println("JWT_SECRET not set; admin routes will reject every request")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
