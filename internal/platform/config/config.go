package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort    string
	SessionKey []byte
	SessionTTL time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBConnStr  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// "redis" or "memory". Memory is single-process only; sessions die
	// with the process.
	SessionStore string

	SeedAdminEmail    string
	SeedAdminName     string
	SeedAdminPassword string
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		APIPort: getEnv("PORT", "8080"),
		// The fallback secret exists for local development only; any
		// real deployment must set IDENTO_SECRET.
		SessionKey: []byte(getEnv("IDENTO_SECRET", "dev-secret-idento-change-me")),
		SessionTTL: time.Duration(getEnvAsInt("SESSION_TTL_HOURS", 72)) * time.Hour,

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "idento"),
		DBPassword: getEnv("DB_PASSWORD", "idento"),
		DBName:     getEnv("DB_NAME", "idento"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		SessionStore: getEnv("SESSION_STORE", "redis"),

		// Known-weak bootstrap credential; rotate after first login.
		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@idento.com"),
		SeedAdminName:     getEnv("SEED_ADMIN_NAME", "Idento Admin"),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", "Admin@123"),
	}

	AppConfig.DBConnStr = "host=" + AppConfig.DBHost +
		" port=" + AppConfig.DBPort +
		" user=" + AppConfig.DBUser +
		" password=" + AppConfig.DBPassword +
		" dbname=" + AppConfig.DBName +
		" sslmode=" + AppConfig.DBSslMode
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
