package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Port string

	DBURL string

	JWTSecret               string
	SessionExpiryMin        int
	ResetTokenExpiryMin     int
	VerificationExpiryHours int
	LoginMaxAttempts        int

	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string

	// AppBaseURL is where the API itself is reachable; verification links
	// point back at it. FrontendBaseURL hosts the login and reset pages.
	AppBaseURL      string
	FrontendBaseURL string
}

func Load() *Config {
	// Absent .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "5000"),

		DBURL: mustGetEnv("DB_URL"),

		JWTSecret:               mustGetEnv("JWT_SECRET"),
		SessionExpiryMin:        getEnvAsInt("SESSION_EXPIRY_MIN", 60),
		ResetTokenExpiryMin:     getEnvAsInt("RESET_TOKEN_EXPIRY_MIN", 60),
		VerificationExpiryHours: getEnvAsInt("VERIFICATION_TOKEN_EXPIRY_HOURS", 24),
		LoginMaxAttempts:        getEnvAsInt("LOGIN_MAX_ATTEMPTS", 5),

		MailHost: mustGetEnv("MAIL_HOST"),
		MailPort: getEnvAsInt("MAIL_PORT", 587),
		MailUser: getEnv("MAIL_USER", ""),
		MailPass: getEnv("MAIL_PASS", ""),
		MailFrom: getEnv("MAIL_FROM", "no-reply@localhost"),

		AppBaseURL:      getEnv("APP_BASE_URL", "http://localhost:5000"),
		FrontendBaseURL: getEnv("FRONTEND_BASE_URL", "http://localhost:3000"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
