package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	TriggerToken string // shared secret for scheduler-invoked endpoints

	SleeperBase string // Sleeper public API base URL
	PipelineURL string // webhook endpoint of the external ML pipeline

	PredTTLHours int // default freshness window for prediction cache writes

	EnableRefreshCron bool   // run the weekly refresh schedule in-process
	RefreshCronSpec   string // cron expression for the refresh schedule
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
		Port: getEnv("PORT", "3000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "fantasy"),
		DBPort:     getEnv("DB_PORT", "5432"),

		TriggerToken: getEnv("TRIGGER_TOKEN", ""),

		SleeperBase: getEnv("SLEEPER_BASE", "https://api.sleeper.app"),
		PipelineURL: getEnv("PIPELINE_URL", ""),

		PredTTLHours: getEnvInt("PRED_TTL_HOURS", 6),

		EnableRefreshCron: getEnvBool("ENABLE_REFRESH_CRON", false),
		RefreshCronSpec:   getEnv("REFRESH_CRON_SPEC", "0 6 * * 2"),
	}

	// Validate critical configuration
	if AppConfig.TriggerToken == "" {
		log.Println("Warning: TRIGGER_TOKEN is not set. All trigger endpoints will reject requests.")
	}
	if AppConfig.PipelineURL == "" {
		log.Println("Warning: PIPELINE_URL is not set. Pipeline dispatches will be logged and dropped.")
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

// getEnvBool retrieves an environment variable as a boolean or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
