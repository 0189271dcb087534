package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadENV loads variables from .env unless GO_ENV says otherwise
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil {
			return err
		}
	}

	return nil
}

type EnviornmentVariable struct {
	// All variables
	GO_ENV       string
	DB_USER_NAME string
	DB_PASSWORD  string
	DB_NAME      string
	DB_HOST      string
	DB_PORT      string
	DB_SSL_MODE  string
	PORT         int
	// JWT Configuration
	JWT_SECRET string
	JWT_ISSUER string
	// Redis Configuration
	REDIS_URL string
	// Admin credentials (checked before the users table on login)
	ADMIN_EMAIL    string
	ADMIN_PASSWORD string
	// Base URL used to build public image URLs
	PUBLIC_BASE_URL string
	// Remote image fetch timeout in seconds
	IMAGE_FETCH_TIMEOUT int
}

func Get() (*EnviornmentVariable, error) {

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8080
	}

	// Database defaults
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}

	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://127.0.0.1:8080"
	}

	fetchTimeout, err := strconv.Atoi(os.Getenv("IMAGE_FETCH_TIMEOUT"))
	if err != nil || fetchTimeout <= 0 {
		fetchTimeout = 15
	}

	envVariables := &EnviornmentVariable{
		GO_ENV:       os.Getenv("GO_ENV"),
		DB_USER_NAME: os.Getenv("DB_USER_NAME"),
		DB_PASSWORD:  os.Getenv("DB_PASSWORD"),
		DB_NAME:      os.Getenv("DB_NAME"),
		DB_HOST:      dbHost,
		DB_PORT:      dbPort,
		DB_SSL_MODE:  os.Getenv("DB_SSL_MODE"),
		PORT:         port,
		// JWT
		JWT_SECRET: os.Getenv("JWT_SECRET"),
		JWT_ISSUER: os.Getenv("JWT_ISSUER"),
		// Redis
		REDIS_URL: os.Getenv("REDIS_URL"),
		// Admin
		ADMIN_EMAIL:    os.Getenv("ADMIN_EMAIL"),
		ADMIN_PASSWORD: os.Getenv("ADMIN_PASSWORD"),
		// Public URLs
		PUBLIC_BASE_URL:     baseURL,
		IMAGE_FETCH_TIMEOUT: fetchTimeout,
	}

	return envVariables, nil
}

// DSN builds the PostgreSQL connection string
func (e *EnviornmentVariable) DSN() string {
	return "host=" + e.DB_HOST +
		" user=" + e.DB_USER_NAME +
		" password=" + e.DB_PASSWORD +
		" dbname=" + e.DB_NAME +
		" port=" + e.DB_PORT +
		" sslmode=" + e.DB_SSL_MODE +
		" TimeZone=UTC"
}
