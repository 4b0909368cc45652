package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	SaltRound int

	CORSOrigin string

	SessionCookie string
	SessionTTL    time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// TeacherAccounts is a comma separated list of "name:password" pairs
	// making up the fixed teacher roster.
	TeacherAccounts string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "4000"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),

		SessionCookie: getEnv("SESSION_COOKIE", "session_id"),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_MIN", 1440)) * time.Minute,

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		TeacherAccounts: getEnv("TEACHER_ACCOUNTS", "mrjohnson:teacher123,mswilliams:teacher456"),
	}

	// Validate critical configuration
	if os.Getenv("TEACHER_ACCOUNTS") == "" {
		log.Println("Warning: Using default TEACHER_ACCOUNTS. Update it in your environment.")
	}
	if AppConfig.RedisAddr == "" {
		log.Println("Warning: REDIS_ADDR not set. Sessions will be kept in process memory.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
