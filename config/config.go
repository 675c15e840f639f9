package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port     string
	DBDriver string // postgres, mysql or sqlite
	DBHost   string
	DBPort   string
	DBUser   string
	DBPass   string
	DBName   string

	JWTKey string // secret used to sign and verify access tokens

	StripeSecretKey string // payment processor secret key
	StripeApiURL    string

	SendGridApiKey string
	EmailSender    string
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
		Port:     getEnv("PORT", "5000"),
		DBDriver: getEnv("DB_DRIVER", "postgres"),
		DBHost:   getEnv("DB_HOST", "localhost"),
		DBPort:   getEnv("DB_PORT", "5432"),
		DBUser:   getEnv("DB_USER", ""),
		DBPass:   getEnv("DB_PASS", ""),
		DBName:   getEnv("DB_NAME", "schoolDb"),

		JWTKey: getEnv("ACCESS_TOKEN_SECRET", "defaultSecret"),

		StripeSecretKey: getEnv("PAYMENT_STRIPE_SK", ""),
		StripeApiURL:    getEnv("PAYMENT_STRIPE_API_URL", "https://api.stripe.com/v1"),

		SendGridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "noreply@schoolhub.example"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default ACCESS_TOKEN_SECRET. Update it in your environment.")
	}
	if AppConfig.StripeSecretKey == "" {
		log.Println("Warning: PAYMENT_STRIPE_SK is not set. Payment intent creation will fail.")
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
