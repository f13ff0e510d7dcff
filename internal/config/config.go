package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port string

	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	AreaCacheTTL  time.Duration

	WhatsAppToken string
	PhoneNumberID string
	GraphAPIURL   string

	BackgroundSendURL   string
	BackgroundSendToken string
	DefaultDelaySeconds int
	HTTPTimeout         time.Duration

	WSAllowedOrigins []string

	LogLevel  string
	LogFormat string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Warn("Error loading .env file")
	}

	return &Config{
		Port: getEnv("PORT", "8080"),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBPath:     getEnv("DB_PATH", "./delivery.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "delivery"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		AreaCacheTTL:  getEnvDuration("AREA_CACHE_TTL", 10*time.Minute),

		WhatsAppToken: getEnv("WHATSAPP_TOKEN", ""),
		PhoneNumberID: getEnv("PHONE_NUMBER_ID", ""),
		GraphAPIURL:   getEnv("GRAPH_API_URL", "https://graph.facebook.com/v19.0"),

		BackgroundSendURL:   getEnv("BACKGROUND_SEND_URL", "http://localhost:3000"),
		BackgroundSendToken: getEnv("BACKGROUND_SEND_TOKEN", ""),
		DefaultDelaySeconds: getEnvInt("DEFAULT_DELAY_SECONDS", 5),
		HTTPTimeout:         getEnvDuration("HTTP_TIMEOUT", 30*time.Second),

		WSAllowedOrigins: getEnvList("WS_ALLOWED_ORIGINS"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.WithField("key", key).Warnf("Invalid integer %q, using %d", value, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.WithField("key", key).Warnf("Invalid duration %q, using %s", value, fallback)
		return fallback
	}
	return d
}

// getEnvList splits a comma separated value, dropping empty entries.
func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
