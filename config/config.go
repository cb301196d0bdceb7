package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Mongo    MongoConfig
	JWT      JWTConfig
	Upload   UploadConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type MongoConfig struct {
	URI        string
	DBName     string
	Collection string
}

type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
	Issuer        string
}

type UploadConfig struct {
	Dir       string
	URLPrefix string
}

func Load() *Config {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:         getenv("PORT", "8080"),
			Env:          getenv("APP_ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             getenv("MYSQL_DSN", "root:@tcp(localhost:3306)/coastwatch?charset=utf8mb4&parseTime=True&loc=Local"),
			MaxIdleConns:    getenvInt("MYSQL_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getenvInt("MYSQL_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: time.Hour,
		},
		Mongo: MongoConfig{
			URI:        getenv("MONGO_URI", "mongodb://localhost:27017"),
			DBName:     getenv("MONGO_DB", "coastwatch"),
			Collection: getenv("MONGO_COLLECTION", "uploads"),
		},
		JWT: JWTConfig{
			AccessSecret:  getenv("JWT_ACCESS_SECRET", "change-me-in-production"),
			RefreshSecret: getenv("JWT_REFRESH_SECRET", "change-me-refresh"),
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: 168 * time.Hour,
			Issuer:        "coastwatch",
		},
		Upload: UploadConfig{
			Dir:       getenv("UPLOAD_DIR", "uploads"),
			URLPrefix: "/uploads",
		},
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
