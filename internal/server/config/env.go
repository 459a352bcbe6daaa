package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from environment variables. A .env file in
// the working directory is loaded first if present; real environment
// variables win over it.
//
// Recognized variables:
//
//	ADDRESS               HTTP bind address (e.g., ":8000")
//	DATABASE_URL          PostgreSQL DSN
//	JWT_SECRET            HMAC secret for signing JWTs
//	JWT_EXPIRATION_HOURS  access token validity, hours
//	CORS_ORIGINS          comma-separated list of allowed origins
//	GENAI_ENDPOINT        base URL of the text-generation service
//	GENAI_API_KEY         API key for the text-generation service
//	GENAI_MODEL           model name for the text-generation service
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddrHTTP = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil {
			config.AccessTokenValidityDuration = time.Duration(hours) * time.Hour
		}
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		config.CORSOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("GENAI_ENDPOINT"); v != "" {
		config.GenAIEndpoint = v
	}
	if v := os.Getenv("GENAI_API_KEY"); v != "" {
		config.GenAIAPIKey = v
	}
	if v := os.Getenv("GENAI_MODEL"); v != "" {
		config.GenAIModel = v
	}
}
