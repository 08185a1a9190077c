package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	UserServicePort    string
	RoomServicePort    string
	MessageServicePort string
	MySQLDSN           string
	RedisAddr          string
	RedisDB            int
	RedisPass          string
	JWTSecret          string
	SwaggerHost        string
	AdminUsername      string
	AdminPassword      string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		UserServicePort:    getEnv("USER_SERVICE_PORT", "3000"),
		RoomServicePort:    getEnv("ROOM_SERVICE_PORT", "37104"),
		MessageServicePort: getEnv("MESSAGE_SERVICE_PORT", "37105"),
		// clientFoundRows makes UPDATE report matched rows instead of changed
		// rows, so resubmitting identical values is not mistaken for a missing id.
		MySQLDSN:           getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/eventhub?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		JWTSecret:          getEnv("JWT_SECRET", "change-me"),
		SwaggerHost:        os.Getenv("SWAGGER_HOST"),
		AdminUsername:      getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:      os.Getenv("ADMIN_PASSWORD"),
	}
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
